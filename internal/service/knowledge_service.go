package service

import (
	"context"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/util"
	"qa_kb_backend/pkg/logger"

	"go.uber.org/zap"
)

type KnowledgeReader interface {
	SearchQuestions(ctx context.Context, term string, limit int) ([]model.QuestionSearchRow, error)
	FindContextParagraphs(ctx context.Context, contextID string) ([]model.ContextParagraph, error)
	ListDocuments(ctx context.Context) ([]model.Document, error)
	ListParagraphs(ctx context.Context, docID *int64) ([]model.Paragraph, error)
}

type ContextCache interface {
	Get(ctx context.Context, contextID string) ([]model.ContextParagraph, bool, error)
	Set(ctx context.Context, contextID string, rows []model.ContextParagraph) error
}

// KnowledgeService 只读查询，不开事务
type KnowledgeService struct {
	Repo  KnowledgeReader
	Cache ContextCache // 可为 nil
}

func NewKnowledgeService(repo KnowledgeReader, cache ContextCache) *KnowledgeService {
	return &KnowledgeService{Repo: repo, Cache: cache}
}

// SearchQuestions 空检索词直接返回空结果，不访问数据库
func (s *KnowledgeService) SearchQuestions(ctx context.Context, term string) ([]model.QuestionSearchRow, error) {
	if term == "" {
		return []model.QuestionSearchRow{}, nil
	}
	rows, err := s.Repo.SearchQuestions(ctx, term, util.SearchLimit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.QuestionSearchRow{}
	}
	return rows, nil
}

func (s *KnowledgeService) GetContext(ctx context.Context, contextID string) ([]model.ContextParagraph, error) {
	if s.Cache != nil {
		rows, hit, err := s.Cache.Get(ctx, contextID)
		if err != nil {
			logger.Log.Warn("Context cache read failed", zap.String("context_id", contextID), zap.Error(err))
		} else if hit {
			return rows, nil
		}
	}

	rows, err := s.Repo.FindContextParagraphs(ctx, contextID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.ContextParagraph{}
	}

	// 空结果不缓存，上下文组可能稍后才写入
	if s.Cache != nil && len(rows) > 0 {
		if err := s.Cache.Set(ctx, contextID, rows); err != nil {
			logger.Log.Warn("Context cache write failed", zap.String("context_id", contextID), zap.Error(err))
		}
	}
	return rows, nil
}

func (s *KnowledgeService) ListDocuments(ctx context.Context) ([]model.Document, error) {
	docs, err := s.Repo.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []model.Document{}
	}
	return docs, nil
}

func (s *KnowledgeService) ListParagraphs(ctx context.Context, docID *int64) ([]model.Paragraph, error) {
	paragraphs, err := s.Repo.ListParagraphs(ctx, docID)
	if err != nil {
		return nil, err
	}
	if paragraphs == nil {
		paragraphs = []model.Paragraph{}
	}
	return paragraphs, nil
}
