package domain

import (
	"context"
	"time"
)

// VerificationToken 对应 verification_tokens 表，和账号一对一。
// 令牌既不删除也不过期，重复访问按幂等激活处理。
type VerificationToken struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AccountID string    `gorm:"uniqueIndex;type:varchar(36);not null" json:"accountId"`
	Token     string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (VerificationToken) TableName() string { return "verification_tokens" }

type VerificationTokenRepository interface {
	Create(ctx context.Context, t *VerificationToken) error
	// FindByToken 精确匹配；未命中返回 ErrNotFound
	FindByToken(ctx context.Context, token string) (*VerificationToken, error)
}
