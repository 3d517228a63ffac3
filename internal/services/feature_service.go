package services

import (
	"context"

	"learnhive/internal/models/db_models"
	"learnhive/internal/repositories"
	"learnhive/pkg/utils"
)

type FeatureServiceInterface interface {
	ListFeatures(ctx context.Context) ([]db_models.Feature, error)
}

type FeatureService struct {
	featureRepo repositories.FeatureRepository
}

func NewFeatureService(featureRepo repositories.FeatureRepository) FeatureServiceInterface {
	return &FeatureService{featureRepo: featureRepo}
}

func (f *FeatureService) ListFeatures(ctx context.Context) ([]db_models.Feature, error) {
	features, err := f.featureRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if features == nil {
		features = []db_models.Feature{}
	}
	return features, nil
}
