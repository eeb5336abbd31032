package domain

import (
	"context"
	"time"
)

// House 民宿房源；对身份核心来说是外围数据
type House struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	ImageName   string    `gorm:"size:255" json:"imageName"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	PostalCode  string    `gorm:"size:16" json:"postalCode"`
	Address     string    `gorm:"size:255" json:"address"`
	PhoneNumber string    `gorm:"size:32" json:"phoneNumber"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (House) TableName() string { return "houses" }

// HouseSort 列表排序方式
type HouseSort string

const (
	HouseSortNewest   HouseSort = "newest"
	HouseSortPriceAsc HouseSort = "price_asc"
)

type HouseRepository interface {
	Create(ctx context.Context, h *House) error
	FindByID(ctx context.Context, id string) (*House, error)
	// List 按名称/住所模糊搜索并分页
	List(ctx context.Context, keyword string, sort HouseSort, offset, limit int) ([]House, int64, error)
	Update(ctx context.Context, h *House) error
	Delete(ctx context.Context, id string) error
}
