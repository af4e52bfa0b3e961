package model

// Document 文档（只读参考数据）
type Document struct {
	DocID int64  `gorm:"column:DOC_ID;primaryKey;autoIncrement:false" json:"DOC_ID"`
	Title string `gorm:"column:TITLE;size:255" json:"TITLE"`
}

func (Document) TableName() string {
	return "documents"
}

// Paragraph 文档段落（只读参考数据）
type Paragraph struct {
	DocID     int64  `gorm:"column:DOC_ID;primaryKey;autoIncrement:false" json:"DOC_ID"`
	ParagID   int64  `gorm:"column:PARAG_ID;primaryKey;autoIncrement:false" json:"PARAG_ID"`
	ParagText string `gorm:"column:PARAG_TEXT;type:text" json:"PARAG_TEXT"`
}

func (Paragraph) TableName() string {
	return "doc_parag"
}
