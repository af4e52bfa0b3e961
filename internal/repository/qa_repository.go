package repository

import (
	"context"
	"errors"

	"qa_kb_backend/internal/model"

	"gorm.io/gorm"
)

// QATx 写事务内可用的操作
type QATx interface {
	CreateQuestion(text string) (uint, error)
	AllocateNumber(family model.IDFamily, floor int64) (int64, error)
	CreateContextRows(rows []model.ContextRow) error
	CreateAnswer(answer *model.Answer) error
	LinkQuestionAnswer(link *model.QALink) error
	UpdateAnswer(answerID, text, contextID string) (int64, error)
	FindAnswerIDByQuestion(questionID uint, contextID string) (string, error)
}

// QAStore 问答写入存储
type QAStore interface {
	WithTransaction(ctx context.Context, fn func(tx QATx) error) error
	UpdateAnswerText(ctx context.Context, answerID, text string) (int64, error)
}

type QARepository struct {
	DB        *gorm.DB
	Allocator *IDAllocator
}

func NewQARepository(db *gorm.DB, allocator *IDAllocator) *QARepository {
	return &QARepository{DB: db, Allocator: allocator}
}

// WithTransaction fn 返回错误或 panic 时整体回滚，连接在所有路径上归还连接池
func (r *QARepository) WithTransaction(ctx context.Context, fn func(tx QATx) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&qaTx{db: tx, allocator: r.Allocator})
	})
}

func (r *QARepository) UpdateAnswerText(ctx context.Context, answerID, text string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.Answer{}).
		Where("ANSWER_ID = ?", answerID).
		Update("ANSWER_TEXT", text)
	return res.RowsAffected, res.Error
}

type qaTx struct {
	db        *gorm.DB
	allocator *IDAllocator
}

func (t *qaTx) CreateQuestion(text string) (uint, error) {
	q := &model.Question{Text: text}
	if err := t.db.Create(q).Error; err != nil {
		return 0, err
	}
	return q.ID, nil
}

func (t *qaTx) AllocateNumber(family model.IDFamily, floor int64) (int64, error) {
	return t.allocator.Next(t.db, family, floor)
}

func (t *qaTx) CreateContextRows(rows []model.ContextRow) error {
	if len(rows) == 0 {
		return nil
	}
	return t.db.Create(&rows).Error
}

func (t *qaTx) CreateAnswer(answer *model.Answer) error {
	return t.db.Create(answer).Error
}

func (t *qaTx) LinkQuestionAnswer(link *model.QALink) error {
	return t.db.Create(link).Error
}

func (t *qaTx) UpdateAnswer(answerID, text, contextID string) (int64, error) {
	res := t.db.Model(&model.Answer{}).
		Where("ANSWER_ID = ?", answerID).
		Updates(map[string]interface{}{
			"ANSWER_TEXT": text,
			"CONTEXT_ID":  contextID,
		})
	return res.RowsAffected, res.Error
}

// FindAnswerIDByQuestion 通过 qa 关联查找问题的答案，contextID 非空时还需匹配答案当前的上下文
func (t *qaTx) FindAnswerIDByQuestion(questionID uint, contextID string) (string, error) {
	query := t.db.Table("qa").
		Select("a.ANSWER_ID").
		Joins("JOIN answers a ON a.ANSWER_ID = qa.ANSWER_ID").
		Where("qa.Q_ID = ?", questionID)
	if contextID != "" {
		query = query.Where("a.CONTEXT_ID = ?", contextID)
	}

	var ids []string
	if err := query.Order("a.ANSWER_ID").Limit(1).Scan(&ids).Error; err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return ids[0], nil
}

// IsNotFound 判断是否为记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
