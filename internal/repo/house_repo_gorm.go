package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-lodging-api/internal/domain"
)

type HouseRepo struct{ db *gorm.DB }

func NewHouseRepo(db *gorm.DB) *HouseRepo { return &HouseRepo{db: db} }

func (r *HouseRepo) Create(ctx context.Context, h *domain.House) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HouseRepo) FindByID(ctx context.Context, id string) (*domain.House, error) {
	var h domain.House
	err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HouseRepo) List(ctx context.Context, keyword string, sort domain.HouseSort, offset, limit int) ([]domain.House, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.House{})
	if s := strings.TrimSpace(keyword); s != "" {
		like := "%" + s + "%"
		q = q.Where("name LIKE ? OR address LIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	switch sort {
	case domain.HouseSortPriceAsc:
		q = q.Order("price ASC")
	default:
		q = q.Order("created_at DESC")
	}
	var out []domain.House
	if err := q.Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *HouseRepo) Update(ctx context.Context, h *domain.House) error {
	var cur domain.House
	err := r.db.WithContext(ctx).Select("id").First(&cur, "id = ?", h.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&domain.House{}).
		Where("id = ?", h.ID).
		Updates(map[string]any{
			"name":         h.Name,
			"image_name":   h.ImageName,
			"description":  h.Description,
			"price":        h.Price,
			"capacity":     h.Capacity,
			"postal_code":  h.PostalCode,
			"address":      h.Address,
			"phone_number": h.PhoneNumber,
		})
	return res.Error
}

func (r *HouseRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.House{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
