package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhive/internal/models/db_models"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, application *db_models.Application) error
	FindAll(ctx context.Context) ([]db_models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ApplicationStatus) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (a *applicationRepository) Insert(ctx context.Context, application *db_models.Application) error {
	return a.db.WithContext(ctx).Create(application).Error
}

func (a *applicationRepository) FindAll(ctx context.Context) ([]db_models.Application, error) {
	var applications []db_models.Application
	err := a.db.WithContext(ctx).Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateStatus overwrites the status unconditionally; there is no guard on
// the current state.
func (a *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ApplicationStatus) (int64, error) {
	res := a.db.WithContext(ctx).Model(&db_models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
