package model

// ContextRow 上下文组中的一行，同一 CONTEXT_ID 下可以有多个 (文档, 段落)
type ContextRow struct {
	ContextID string `gorm:"column:CONTEXT_ID;primaryKey;size:64" json:"contextId"`
	DocID     int64  `gorm:"column:DOC_ID;primaryKey;autoIncrement:false" json:"docId"`
	ParagID   int64  `gorm:"column:PARAG_ID;primaryKey;autoIncrement:false" json:"paragId"`
}

func (ContextRow) TableName() string {
	return "context"
}

// ContextParagraph 上下文查询结果，段落不存在时 PARAG_TEXT 为 null
type ContextParagraph struct {
	DocID     int64   `gorm:"column:DOC_ID" json:"DOC_ID"`
	ParagID   int64   `gorm:"column:PARAG_ID" json:"PARAG_ID"`
	ParagText *string `gorm:"column:PARAG_TEXT" json:"PARAG_TEXT"`
}

// ParagraphRef 客户端提交的 (docId, paragId)
type ParagraphRef struct {
	DocID   FlexibleID `json:"docId" form:"docId"`
	ParagID FlexibleID `json:"paragId" form:"paragId"`
}

// ContextRows 按给定顺序生成同一上下文ID下的行
func ContextRows(contextID string, refs []ParagraphRef) []ContextRow {
	rows := make([]ContextRow, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, ContextRow{
			ContextID: contextID,
			DocID:     int64(ref.DocID),
			ParagID:   int64(ref.ParagID),
		})
	}
	return rows
}
