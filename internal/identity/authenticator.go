package identity

import (
	"context"
	"errors"

	"go-lodging-api/internal/domain"
	"go-lodging-api/pkg/utils"
)

// Authenticator 邮箱+密码换取 Authenticated{role}。
// 禁用账号无论密码对不对都不能登录。
type Authenticator struct {
	accounts domain.AccountRepository
}

func NewAuthenticator(accounts domain.AccountRepository) *Authenticator {
	return &Authenticator{accounts: accounts}
}

// Authenticate 失败统一返回 ErrAuthenticationFailed，
// 不区分"账号不存在 / 密码错 / 未启用"，避免给探测者信息
func (s *Authenticator) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	a, err := s.accounts.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, err
	}
	if !a.Enabled {
		return nil, domain.ErrAuthenticationFailed
	}
	if !utils.CheckPassword(password, a.PasswordHash) {
		return nil, domain.ErrAuthenticationFailed
	}
	return a, nil
}
