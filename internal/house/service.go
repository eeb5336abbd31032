// Package house 房源目录：公开浏览 + 管理端 CRUD。
// 对身份核心而言这是外围协作方，保持薄。
package house

import (
	"context"
	"time"

	"go-lodging-api/internal/core/cache"
	"go-lodging-api/internal/domain"
	"go-lodging-api/pkg/utils"
)

const detailTTL = 5 * time.Minute

type Service struct {
	houses domain.HouseRepository
	cache  *cache.Cache // 可为 nil（测试/未配置 redis）
}

func NewService(houses domain.HouseRepository, c *cache.Cache) *Service {
	return &Service{houses: houses, cache: c}
}

func (s *Service) List(ctx context.Context, keyword string, sort domain.HouseSort, page, size int) ([]domain.House, int64, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return s.houses.List(ctx, keyword, sort, (page-1)*size, size)
}

// Get 详情页读多写少，挂读穿缓存
func (s *Service) Get(ctx context.Context, id string) (*domain.House, error) {
	if s.cache == nil {
		return s.houses.FindByID(ctx, id)
	}
	h, err := cache.GetOrLoadJSON(s.cache, ctx, detailKey(id), detailTTL, func(ctx context.Context) (*domain.House, error) {
		return s.houses.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, h *domain.House) error {
	if h.ID == "" {
		h.ID = utils.NewID()
	}
	return s.houses.Create(ctx, h)
}

func (s *Service) Update(ctx context.Context, h *domain.House) error {
	if err := s.houses.Update(ctx, h); err != nil {
		return err
	}
	s.invalidate(ctx, h.ID)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.houses.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, detailKey(id))
	}
}

func detailKey(id string) string { return "house:detail:" + id }
