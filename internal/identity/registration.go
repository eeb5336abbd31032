// Package identity 身份生命周期核心：注册、邮箱验证、登录鉴权、路由授权。
package identity

import (
	"context"
	"errors"
	"strings"

	"go-lodging-api/internal/domain"
	"go-lodging-api/pkg/utils"
)

// RegisterInput 注册表单。Password 和 PasswordConfirmation 必须一致。
type RegisterInput struct {
	Email                string
	Password             string
	PasswordConfirmation string
	Name                 string
	Furigana             string
	PostalCode           string
	Address              string
	PhoneNumber          string
}

// RegistrationService 创建初始禁用的账号；email 唯一性归它管
type RegistrationService struct {
	accounts   domain.AccountRepository
	roles      domain.RoleStore
	bcryptCost int
}

func NewRegistrationService(accounts domain.AccountRepository, roles domain.RoleStore, bcryptCost int) *RegistrationService {
	return &RegistrationService{accounts: accounts, roles: roles, bcryptCost: bcryptCost}
}

// NormalizeEmail 邮箱大小写策略：所有边界统一转小写，
// 唯一性因此等价于大小写不敏感
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register 校验全部通过才写库；email 重复和密码不一致
// 是字段级错误，能在一次提交里同时上报。
// 成功返回已持久化的账号（enabled=false）。
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	email := NormalizeEmail(in.Email)

	var ferrs domain.FieldErrors
	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		ferrs = append(ferrs, domain.FieldError{Field: "email", Err: domain.ErrDuplicateEmail})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if in.Password != in.PasswordConfirmation {
		ferrs = append(ferrs, domain.FieldError{Field: "password", Err: domain.ErrPasswordMismatch})
	}
	if len(ferrs) > 0 {
		return nil, ferrs
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	roleID, err := s.roles.IDByName(ctx, domain.RoleGeneral)
	if err != nil {
		return nil, err
	}

	a := &domain.Account{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: hash,
		RoleID:       roleID,
		Role:         domain.RoleRecord{ID: roleID, Name: domain.RoleGeneral.String()},
		Enabled:      false,
		Name:         in.Name,
		Furigana:     in.Furigana,
		PostalCode:   in.PostalCode,
		Address:      in.Address,
		PhoneNumber:  in.PhoneNumber,
	}
	// 预检查只是优化；并发重复注册由存储层唯一约束兜底
	if err := s.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.FieldErrors{{Field: "email", Err: domain.ErrDuplicateEmail}}
		}
		return nil, err
	}
	return a, nil
}
