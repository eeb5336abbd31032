package identity

import (
	"context"
	"errors"

	"go-lodging-api/internal/domain"
)

// VerificationService 把令牌字符串解析成账号并启用它
type VerificationService struct {
	tokens   domain.VerificationTokenRepository
	accounts domain.AccountRepository
}

func NewVerificationService(tokens domain.VerificationTokenRepository, accounts domain.AccountRepository) *VerificationService {
	return &VerificationService{tokens: tokens, accounts: accounts}
}

// Verify 精确匹配令牌 → 显式按 ID 取账号 → 置 enabled=true。
// 令牌不存在或指向的账号已消失都算 ErrInvalidToken，且不改任何状态。
// 同一令牌重复访问是幂等激活，不报错。
func (s *VerificationService) Verify(ctx context.Context, token string) (*domain.Account, error) {
	t, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	a, err := s.accounts.FindByID(ctx, t.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if err := s.accounts.Enable(ctx, a.ID); err != nil {
		return nil, err
	}
	a.Enabled = true
	return a, nil
}
