package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go-lodging-api/internal/domain"
)

type AccountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) *AccountRepo { return &AccountRepo{db: db} }

func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	err := r.db.WithContext(ctx).Create(a).Error
	// 并发兜底：唯一冲突统一翻译成 DuplicateEmail
	if domain.IsDuplicateKey(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *AccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.WithContext(ctx).Preload("Role").First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.WithContext(ctx).Preload("Role").First(&a, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Enable 幂等：已启用的账号再执行一遍不报错。
// 注意不能用 RowsAffected 判断存在性，mysql 对无变化的 UPDATE 报 0 行
func (r *AccountRepo) Enable(ctx context.Context, id string) error {
	var a domain.Account
	err := r.db.WithContext(ctx).Select("id").First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{"enabled": true, "updated_at": time.Now()}).Error
}

// UpdateProfile 只写资料列，enabled/role 不在更新集合里
func (r *AccountRepo) UpdateProfile(ctx context.Context, id string, p domain.AccountProfile) error {
	var a domain.Account
	err := r.db.WithContext(ctx).Select("id").First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"email":        p.Email,
			"name":         p.Name,
			"furigana":     p.Furigana,
			"postal_code":  p.PostalCode,
			"address":      p.Address,
			"phone_number": p.PhoneNumber,
			"updated_at":   time.Now(),
		})
	if domain.IsDuplicateKey(res.Error) {
		return domain.ErrDuplicateEmail
	}
	return res.Error
}

func (r *AccountRepo) List(ctx context.Context, keyword string, offset, limit int) ([]domain.Account, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Account{})
	if s := strings.TrimSpace(keyword); s != "" {
		like := "%" + s + "%"
		q = q.Where("email LIKE ? OR name LIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Account
	if err := q.Preload("Role").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
