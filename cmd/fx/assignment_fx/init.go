package assignment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhive/internal/repositories"
	"learnhive/internal/services"
)

var Module = fx.Provide(
	provideAssignmentRepo, provideAssignmentService)

func provideAssignmentRepo(db *gorm.DB) repositories.AssignmentRepository {
	return repositories.NewAssignmentRepository(db)
}

func provideAssignmentService(assignmentRepo repositories.AssignmentRepository) services.AssignmentServiceInterface {
	return services.NewAssignmentService(assignmentRepo)
}
