package class_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhive/internal/repositories"
	"learnhive/internal/services"
)

var Module = fx.Provide(
	provideClassRepo, provideClassService)

func provideClassRepo(db *gorm.DB) repositories.ClassRepository {
	return repositories.NewClassRepository(db)
}

func provideClassService(classRepo repositories.ClassRepository) services.ClassServiceInterface {
	return services.NewClassService(classRepo)
}
