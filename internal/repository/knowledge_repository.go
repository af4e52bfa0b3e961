package repository

import (
	"context"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KnowledgeRepository struct {
	DB *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{DB: db}
}

const searchQuestionsSQL = "SELECT q.Q_ID AS questionId, q.Q_TEXT AS question, a.ANSWER_ID AS answerId, a.ANSWER_TEXT AS answer, a.CONTEXT_ID AS contextId " +
	"FROM questions q " +
	"JOIN qa ON q.Q_ID = qa.Q_ID " +
	"JOIN answers a ON a.ANSWER_ID = qa.ANSWER_ID " +
	"WHERE LOWER(q.Q_TEXT) LIKE LOWER(?) " +
	"LIMIT ?"

// SearchQuestions 按问题文本做不区分大小写的子串匹配
func (r *KnowledgeRepository) SearchQuestions(ctx context.Context, term string, limit int) ([]model.QuestionSearchRow, error) {
	rows := make([]model.QuestionSearchRow, 0)
	err := r.DB.WithContext(ctx).
		Raw(searchQuestionsSQL, "%"+util.EscapeLike(term)+"%", limit).
		Scan(&rows).Error
	return rows, err
}

const contextParagraphsSQL = "SELECT c.DOC_ID, c.PARAG_ID, dp.PARAG_TEXT " +
	"FROM context c " +
	"LEFT JOIN doc_parag dp ON c.DOC_ID = dp.DOC_ID AND c.PARAG_ID = dp.PARAG_ID " +
	"WHERE c.CONTEXT_ID = ? " +
	"ORDER BY c.DOC_ID, c.PARAG_ID"

func (r *KnowledgeRepository) FindContextParagraphs(ctx context.Context, contextID string) ([]model.ContextParagraph, error) {
	rows := make([]model.ContextParagraph, 0)
	err := r.DB.WithContext(ctx).Raw(contextParagraphsSQL, contextID).Scan(&rows).Error
	return rows, err
}

func (r *KnowledgeRepository) ListDocuments(ctx context.Context) ([]model.Document, error) {
	docs := make([]model.Document, 0)
	err := r.DB.WithContext(ctx).Select("DOC_ID", "TITLE").Find(&docs).Error
	return docs, err
}

// ListParagraphs docID 为 nil 时返回全部段落
func (r *KnowledgeRepository) ListParagraphs(ctx context.Context, docID *int64) ([]model.Paragraph, error) {
	paragraphs := make([]model.Paragraph, 0)
	db := r.DB.WithContext(ctx)
	if docID != nil {
		db = db.Where("DOC_ID = ?", *docID)
	}
	err := db.Find(&paragraphs).Error
	return paragraphs, err
}

// ImportReference 在一个事务内写入文档和段落，主键已存在时覆盖
func (r *KnowledgeRepository) ImportReference(ctx context.Context, docs []model.Document, paragraphs []model.Paragraph) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(docs) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(docs, 500).Error; err != nil {
				return err
			}
		}
		if len(paragraphs) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(paragraphs, 500).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
