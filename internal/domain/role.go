package domain

import "context"

// Role 封闭枚举；数据库只存角色名（序列化细节）
type Role string

const (
	RoleGeneral Role = "GENERAL"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleGeneral, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// ParseRole 把外部字符串（JWT claim、DB 行）安全转成 Role
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

// RoleRecord 对应 roles 表；只读参考数据
type RoleRecord struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:32;not null" json:"name"`
}

func (RoleRecord) TableName() string { return "roles" }

// RoleStore 按角色名查 ID；读多写少，适合挂缓存
type RoleStore interface {
	IDByName(ctx context.Context, role Role) (uint, error)
}
