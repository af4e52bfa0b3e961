package model

// Answer 答案，ANSWER_ID 形如 A_<n>_1，CONTEXT_ID 指向一组上下文段落
type Answer struct {
	ID        string `gorm:"column:ANSWER_ID;primaryKey;size:64" json:"answerId"`
	Text      string `gorm:"column:ANSWER_TEXT;type:text;not null" json:"answer"`
	ContextID string `gorm:"column:CONTEXT_ID;size:64;index" json:"contextId"`
}

func (Answer) TableName() string {
	return "answers"
}
