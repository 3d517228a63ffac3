package repositories

import (
	"context"

	"gorm.io/gorm"

	"learnhive/internal/models/db_models"
)

type FeatureRepository interface {
	FindAll(ctx context.Context) ([]db_models.Feature, error)
}

type featureRepository struct {
	db *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

func (f *featureRepository) FindAll(ctx context.Context) ([]db_models.Feature, error) {
	var features []db_models.Feature
	if err := f.db.WithContext(ctx).Order("created_at ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}
