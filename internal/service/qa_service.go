package service

import (
	"context"
	"fmt"
	"strings"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/repository"
	"qa_kb_backend/internal/util"
	"qa_kb_backend/pkg/logger"
	"qa_kb_backend/pkg/monitoring"
	"qa_kb_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	opCreateQA     = "create_question_answer"
	opReviseAnswer = "revise_answer"
)

type QAService struct {
	Store repository.QAStore
	// 答案编号不低于同一次创建分配的上下文编号，保持两类ID大致同步
	SyncAnswerToContext bool
}

func NewQAService(store repository.QAStore, syncAnswerToContext bool) *QAService {
	return &QAService{
		Store:               store,
		SyncAnswerToContext: syncAnswerToContext,
	}
}

type CreateQAInput struct {
	QuestionText string
	AnswerText   string
	Paragraphs   []model.ParagraphRef
}

type CreateQAResult struct {
	QuestionID uint
	AnswerID   string
	ContextID  string
}

// ReviseAnswerInput AnswerID 为空时通过 QuestionID（可选 CurrentContextID）定位答案
type ReviseAnswerInput struct {
	AnswerID         string
	QuestionID       uint
	CurrentContextID string
	Text             string
	Paragraphs       []model.ParagraphRef
}

type ReviseAnswerResult struct {
	AnswerID  string
	ContextID string
}

// CreateQuestionAnswer 在一个事务内写入问题、上下文、答案和关联，任一步失败全部回滚
func (s *QAService) CreateQuestionAnswer(ctx context.Context, in CreateQAInput) (*CreateQAResult, error) {
	in.QuestionText = strings.TrimSpace(in.QuestionText)
	in.AnswerText = strings.TrimSpace(in.AnswerText)
	if in.QuestionText == "" {
		return nil, fmt.Errorf("%w: questionText is required", util.ErrValidation)
	}
	if in.AnswerText == "" {
		return nil, fmt.Errorf("%w: answerText is required", util.ErrValidation)
	}
	if err := validateParagraphs(in.Paragraphs); err != nil {
		return nil, err
	}

	ctx, span := tracing.Tracer.Start(ctx, "QAService.CreateQuestionAnswer",
		trace.WithAttributes(attribute.Int("qa.paragraphs", len(in.Paragraphs))))
	defer span.End()

	var result CreateQAResult
	err := s.Store.WithTransaction(ctx, func(tx repository.QATx) error {
		questionID, err := tx.CreateQuestion(in.QuestionText)
		if err != nil {
			return fmt.Errorf("insert question: %w", err)
		}

		nCtx, err := tx.AllocateNumber(model.ContextFamily, 0)
		if err != nil {
			return fmt.Errorf("allocate context id: %w", err)
		}
		contextID := model.ContextFamily.Format(nCtx)

		if err := tx.CreateContextRows(model.ContextRows(contextID, in.Paragraphs)); err != nil {
			return fmt.Errorf("insert context %s: %w", contextID, err)
		}

		var floor int64
		if s.SyncAnswerToContext {
			floor = nCtx
		}
		nAns, err := tx.AllocateNumber(model.AnswerFamily, floor)
		if err != nil {
			return fmt.Errorf("allocate answer id: %w", err)
		}
		answerID := model.AnswerFamily.Format(nAns)

		answer := &model.Answer{ID: answerID, Text: in.AnswerText, ContextID: contextID}
		if err := tx.CreateAnswer(answer); err != nil {
			return fmt.Errorf("insert answer %s: %w", answerID, err)
		}

		if err := tx.LinkQuestionAnswer(&model.QALink{QuestionID: questionID, AnswerID: answerID}); err != nil {
			return fmt.Errorf("link question %d to %s: %w", questionID, answerID, err)
		}

		result = CreateQAResult{QuestionID: questionID, AnswerID: answerID, ContextID: contextID}
		return nil
	})
	monitoring.ObserveTransaction(opCreateQA, err)
	if err != nil {
		tracing.Fail(span, err, "transaction rolled back")
		return nil, err
	}

	monitoring.IdentifiersAllocated.WithLabelValues(model.ContextFamily.Name).Inc()
	monitoring.IdentifiersAllocated.WithLabelValues(model.AnswerFamily.Name).Inc()
	span.SetAttributes(attribute.String("qa.answer_id", result.AnswerID))

	logger.Log.Info("Question and answer created",
		zap.Uint("question_id", result.QuestionID),
		zap.String("answer_id", result.AnswerID),
		zap.String("context_id", result.ContextID),
		zap.Int("paragraphs", len(in.Paragraphs)),
	)
	return &result, nil
}

// ReviseAnswer 为答案分配新的上下文ID并更新文本，旧上下文行保留不删
func (s *QAService) ReviseAnswer(ctx context.Context, in ReviseAnswerInput) (*ReviseAnswerResult, error) {
	in.AnswerID = strings.TrimSpace(in.AnswerID)
	in.Text = strings.TrimSpace(in.Text)
	if in.AnswerID == "" && in.QuestionID == 0 {
		return nil, fmt.Errorf("%w: answerId or questionId is required", util.ErrValidation)
	}
	if in.Text == "" {
		return nil, fmt.Errorf("%w: newAnswer is required", util.ErrValidation)
	}
	if err := validateParagraphs(in.Paragraphs); err != nil {
		return nil, err
	}

	ctx, span := tracing.Tracer.Start(ctx, "QAService.ReviseAnswer",
		trace.WithAttributes(attribute.Int("qa.paragraphs", len(in.Paragraphs))))
	defer span.End()

	var result ReviseAnswerResult
	err := s.Store.WithTransaction(ctx, func(tx repository.QATx) error {
		answerID := in.AnswerID
		if answerID == "" {
			id, err := tx.FindAnswerIDByQuestion(in.QuestionID, strings.TrimSpace(in.CurrentContextID))
			if repository.IsNotFound(err) {
				return fmt.Errorf("%w: no answer linked to question %d", util.ErrAnswerNotFound, in.QuestionID)
			}
			if err != nil {
				return fmt.Errorf("resolve answer of question %d: %w", in.QuestionID, err)
			}
			answerID = id
		}

		nCtx, err := tx.AllocateNumber(model.ContextFamily, 0)
		if err != nil {
			return fmt.Errorf("allocate context id: %w", err)
		}
		contextID := model.ContextFamily.Format(nCtx)

		if err := tx.CreateContextRows(model.ContextRows(contextID, in.Paragraphs)); err != nil {
			return fmt.Errorf("insert context %s: %w", contextID, err)
		}

		affected, err := tx.UpdateAnswer(answerID, in.Text, contextID)
		if err != nil {
			return fmt.Errorf("update answer %s: %w", answerID, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: %s", util.ErrAnswerNotFound, answerID)
		}

		result = ReviseAnswerResult{AnswerID: answerID, ContextID: contextID}
		return nil
	})
	monitoring.ObserveTransaction(opReviseAnswer, err)
	if err != nil {
		tracing.Fail(span, err, "transaction rolled back")
		return nil, err
	}

	monitoring.IdentifiersAllocated.WithLabelValues(model.ContextFamily.Name).Inc()
	logger.Log.Info("Answer revised",
		zap.String("answer_id", result.AnswerID),
		zap.String("context_id", result.ContextID),
	)
	return &result, nil
}

// UpdateAnswerText 只替换答案文本，不涉及上下文
func (s *QAService) UpdateAnswerText(ctx context.Context, answerID, text string) error {
	answerID = strings.TrimSpace(answerID)
	if answerID == "" || strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: answerId and newAnswer are required", util.ErrValidation)
	}

	affected, err := s.Store.UpdateAnswerText(ctx, answerID, text)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", util.ErrAnswerNotFound, answerID)
	}
	return nil
}

func validateParagraphs(refs []model.ParagraphRef) error {
	if len(refs) == 0 {
		return fmt.Errorf("%w: contextData must contain at least one paragraph", util.ErrValidation)
	}
	seen := make(map[model.ParagraphRef]bool, len(refs))
	for i, ref := range refs {
		if ref.DocID <= 0 || ref.ParagID <= 0 {
			return fmt.Errorf("%w: contextData[%d] needs positive docId and paragId", util.ErrValidation, i)
		}
		if seen[ref] {
			return fmt.Errorf("%w: contextData[%d] repeats doc %d paragraph %d", util.ErrValidation, i, ref.DocID, ref.ParagID)
		}
		seen[ref] = true
	}
	return nil
}
