package model

// IDSequence 每个标识符族一行，分配编号时加行锁并记录已发出的最大编号
type IDSequence struct {
	Family    string `gorm:"column:family;primaryKey;size:32"`
	LastValue int64  `gorm:"column:last_value;not null;default:0"`
}

func (IDSequence) TableName() string {
	return "id_sequences"
}
