package repositories

import (
	"context"

	"gorm.io/gorm"

	"learnhive/internal/models/db_models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	FindAll(ctx context.Context) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]db_models.Review, error) {
	var reviews []db_models.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
