package services

import (
	"context"

	"github.com/google/uuid"

	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/models/response_models"
	"learnhive/internal/repositories"
	"learnhive/pkg/utils"
)

type ApplicationServiceInterface interface {
	ListApplications(ctx context.Context) ([]db_models.Application, error)
	CreateApplication(ctx context.Context, req request_models.CreateApplicationRequest) (*response_models.InsertResult, error)
	SetStatus(ctx context.Context, id string, status db_models.ApplicationStatus) (*response_models.UpdateResult, error)
}

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository) ApplicationServiceInterface {
	return &ApplicationService{applicationRepo: applicationRepo}
}

func (a *ApplicationService) ListApplications(ctx context.Context) ([]db_models.Application, error) {
	applications, err := a.applicationRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if applications == nil {
		applications = []db_models.Application{}
	}
	return applications, nil
}

func (a *ApplicationService) CreateApplication(ctx context.Context, req request_models.CreateApplicationRequest) (*response_models.InsertResult, error) {
	application := &db_models.Application{
		UserEmail:  req.UserEmail,
		Name:       req.Name,
		Title:      req.Title,
		Experience: req.Experience,
		Category:   req.Category,
		Status:     db_models.ApplicationPending,
	}
	if err := a.applicationRepo.Insert(ctx, application); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.InsertResult{Acknowledged: true, InsertedID: application.ID.String()}, nil
}

// SetStatus performs the unconditional overwrite all three transition routes
// share; any state may be forced to any other.
func (a *ApplicationService) SetStatus(ctx context.Context, id string, status db_models.ApplicationStatus) (*response_models.UpdateResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &response_models.UpdateResult{Acknowledged: true}, nil
	}

	affected, err := a.applicationRepo.UpdateStatus(ctx, uid, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}
