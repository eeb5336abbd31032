package domain

import (
	"context"
	"time"
)

// Account 对应 accounts 表。注册时 Enabled=false，
// 只有 VerificationService 能把它翻成 true（false→true 恰好一次）。
type Account struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	RoleID       uint       `gorm:"not null" json:"-"`
	Role         RoleRecord `gorm:"foreignKey:RoleID" json:"role"`
	Enabled      bool       `gorm:"not null;default:false" json:"enabled"`

	// 资料字段，对本核心不透明
	Name        string `gorm:"size:64;not null" json:"name"`
	Furigana    string `gorm:"size:64" json:"furigana"`
	PostalCode  string `gorm:"size:16" json:"postalCode"`
	Address     string `gorm:"size:255" json:"address"`
	PhoneNumber string `gorm:"size:32" json:"phoneNumber"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Account) TableName() string { return "accounts" }

// RoleName 读取关联角色的枚举值；关联未加载时返回空
func (a *Account) RoleName() Role {
	r, _ := ParseRole(a.Role.Name)
	return r
}

// AccountProfile 资料编辑的输入；不含 enabled / role，
// 账号管理流程不允许触碰这两个字段。
type AccountProfile struct {
	Email       string
	Name        string
	Furigana    string
	PostalCode  string
	Address     string
	PhoneNumber string
}

type AccountRepository interface {
	Create(ctx context.Context, a *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	// Enable 幂等置 enabled=true，updated_at 由调用点显式刷新
	Enable(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, id string, p AccountProfile) error
	List(ctx context.Context, keyword string, offset, limit int) ([]Account, int64, error)
}
