package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"go-lodging-api/internal/core/cache"
	"go-lodging-api/internal/domain"
)

// RoleStore 角色参考数据；启动时 Seed，之后只读
type RoleStore struct{ db *gorm.DB }

func NewRoleStore(db *gorm.DB) *RoleStore { return &RoleStore{db: db} }

// Seed 保证 GENERAL / ADMIN 两行存在（幂等）
func (r *RoleStore) Seed(ctx context.Context) error {
	for _, name := range []domain.Role{domain.RoleGeneral, domain.RoleAdmin} {
		rec := domain.RoleRecord{Name: name.String()}
		err := r.db.WithContext(ctx).
			Where("name = ?", name.String()).
			FirstOrCreate(&rec).Error
		if err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

func (r *RoleStore) IDByName(ctx context.Context, role domain.Role) (uint, error) {
	var rec domain.RoleRecord
	err := r.db.WithContext(ctx).First(&rec, "name = ?", role.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// CachedRoleStore 在 RoleStore 前面挂 redis 读穿缓存；
// 角色表运行期不变，TTL 给长一点
type CachedRoleStore struct {
	inner domain.RoleStore
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedRoleStore(inner domain.RoleStore, c *cache.Cache) *CachedRoleStore {
	return &CachedRoleStore{inner: inner, cache: c, ttl: time.Hour}
}

func (s *CachedRoleStore) IDByName(ctx context.Context, role domain.Role) (uint, error) {
	key := "role:id:" + role.String()
	v, err := cache.GetOrLoadJSON(s.cache, ctx, key, s.ttl, func(ctx context.Context) (*uint, error) {
		id, err := s.inner.IDByName(ctx, role)
		if err != nil {
			return nil, err
		}
		return &id, nil
	})
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, domain.ErrNotFound
	}
	return *v, nil
}
