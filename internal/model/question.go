package model

// Question 知识库中的问题，Q_ID 由数据库自增生成
type Question struct {
	ID   uint   `gorm:"column:Q_ID;primaryKey;autoIncrement" json:"questionId"`
	Text string `gorm:"column:Q_TEXT;type:text;not null" json:"question"`
}

func (Question) TableName() string {
	return "questions"
}

// QALink 问题与答案的关联
type QALink struct {
	QuestionID uint   `gorm:"column:Q_ID;primaryKey;autoIncrement:false" json:"questionId"`
	AnswerID   string `gorm:"column:ANSWER_ID;primaryKey;size:64" json:"answerId"`
}

func (QALink) TableName() string {
	return "qa"
}

// QuestionSearchRow 问题检索结果（问题 + 答案 + 上下文ID）
type QuestionSearchRow struct {
	QuestionID uint   `gorm:"column:questionId" json:"questionId"`
	Question   string `gorm:"column:question" json:"question"`
	AnswerID   string `gorm:"column:answerId" json:"answerId"`
	Answer     string `gorm:"column:answer" json:"answer"`
	ContextID  string `gorm:"column:contextId" json:"contextId"`
}
