package feature_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhive/internal/repositories"
	"learnhive/internal/services"
)

var Module = fx.Provide(
	provideFeatureRepo, provideFeatureService)

func provideFeatureRepo(db *gorm.DB) repositories.FeatureRepository {
	return repositories.NewFeatureRepository(db)
}

func provideFeatureService(featureRepo repositories.FeatureRepository) services.FeatureServiceInterface {
	return services.NewFeatureService(featureRepo)
}
