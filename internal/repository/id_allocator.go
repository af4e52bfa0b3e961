package repository

import (
	"fmt"

	"qa_kb_backend/internal/model"

	"gorm.io/gorm"
)

// IDAllocator 为复合标识符分配下一个编号，必须在写事务内调用。
//
// 先用 ON DUPLICATE KEY UPDATE 直接对 id_sequences 中该族的行加排他锁，
// 使并发分配串行化，不能用 INSERT IGNORE（共享锁升级会死锁）；
// 再按 (长度 DESC, 字符串 DESC) 扫描现有标识符取最大编号，
// 这样 C_A_100_1 排在 C_A_99_1 之前。事务回滚时序列行一并回滚。
type IDAllocator struct{}

const seedSequenceSQL = "INSERT INTO id_sequences (family, last_value) VALUES (?, 0) " +
	"ON DUPLICATE KEY UPDATE last_value = last_value"

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next 返回 max(扫描最大值+1, 序列值+1, floor)
func (a *IDAllocator) Next(tx *gorm.DB, family model.IDFamily, floor int64) (int64, error) {
	if err := tx.Exec(seedSequenceSQL, family.Name).Error; err != nil {
		return 0, fmt.Errorf("seed %s sequence: %w", family.Name, err)
	}

	var last int64
	if err := tx.Raw("SELECT last_value FROM id_sequences WHERE family = ? FOR UPDATE", family.Name).Scan(&last).Error; err != nil {
		return 0, fmt.Errorf("lock %s sequence: %w", family.Name, err)
	}

	latest, err := a.Latest(tx, family)
	if err != nil {
		return 0, err
	}

	next := NextNumber(latest, last, floor)
	if err := tx.Exec("UPDATE id_sequences SET last_value = ? WHERE family = ?", next, family.Name).Error; err != nil {
		return 0, fmt.Errorf("advance %s sequence: %w", family.Name, err)
	}
	return next, nil
}

// Latest 返回表中该族最大的编号，没有匹配行时为 0。
// REGEXP_LIKE 的 'c' 标志强制区分大小写，_ci 排序规则下 c_a_1_1 不会被选中
func (a *IDAllocator) Latest(tx *gorm.DB, family model.IDFamily) (int64, error) {
	query := fmt.Sprintf(
		"SELECT `%[2]s` FROM `%[1]s` WHERE REGEXP_LIKE(`%[2]s`, ?, 'c') ORDER BY LENGTH(`%[2]s`) DESC, `%[2]s` DESC LIMIT 1",
		family.Table, family.Column,
	)

	var ids []string
	if err := tx.Raw(query, family.Pattern).Scan(&ids).Error; err != nil {
		return 0, fmt.Errorf("scan %s identifiers: %w", family.Name, err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return family.Parse(ids[0])
}

func NextNumber(latest, last, floor int64) int64 {
	next := latest + 1
	if last+1 > next {
		next = last + 1
	}
	if floor > next {
		next = floor
	}
	return next
}
