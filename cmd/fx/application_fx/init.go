package application_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhive/internal/repositories"
	"learnhive/internal/services"
)

var Module = fx.Provide(
	provideApplicationRepo, provideApplicationService)

func provideApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return repositories.NewApplicationRepository(db)
}

func provideApplicationService(applicationRepo repositories.ApplicationRepository) services.ApplicationServiceInterface {
	return services.NewApplicationService(applicationRepo)
}
