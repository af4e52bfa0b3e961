package repository

import (
	"context"

	"gorm.io/gorm"
)

type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	var found []int
	err := r.DB.WithContext(ctx).
		Raw("SELECT 1 FROM tokens WHERE token = ? LIMIT 1", token).
		Scan(&found).Error
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

// Create 写入新的访问令牌，供运维脚本使用
func (r *TokenRepository) Create(ctx context.Context, token string) error {
	return r.DB.WithContext(ctx).Exec("INSERT INTO tokens (token) VALUES (?)", token).Error
}
