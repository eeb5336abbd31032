package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-lodging-api/internal/domain"
)

type VerificationTokenRepo struct{ db *gorm.DB }

func NewVerificationTokenRepo(db *gorm.DB) *VerificationTokenRepo {
	return &VerificationTokenRepo{db: db}
}

func (r *VerificationTokenRepo) Create(ctx context.Context, t *domain.VerificationToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *VerificationTokenRepo) FindByToken(ctx context.Context, token string) (*domain.VerificationToken, error) {
	var t domain.VerificationToken
	err := r.db.WithContext(ctx).First(&t, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
