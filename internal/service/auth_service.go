package service

import (
	"context"
)

type TokenChecker interface {
	Exists(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	Tokens TokenChecker
}

func NewAuthService(tokens TokenChecker) *AuthService {
	return &AuthService{Tokens: tokens}
}

// ValidateToken 令牌不存在不算错误，返回 false
func (s *AuthService) ValidateToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.Tokens.Exists(ctx, token)
}
