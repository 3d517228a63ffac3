package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhive/internal/models/db_models"
)

type AssignmentRepository interface {
	Insert(ctx context.Context, submission *db_models.AssignmentSubmission) error
	FindAll(ctx context.Context) ([]db_models.AssignmentSubmission, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (a *assignmentRepository) Insert(ctx context.Context, submission *db_models.AssignmentSubmission) error {
	return a.db.WithContext(ctx).Create(submission).Error
}

func (a *assignmentRepository) FindAll(ctx context.Context) ([]db_models.AssignmentSubmission, error) {
	var submissions []db_models.AssignmentSubmission
	err := a.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (a *assignmentRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := a.db.WithContext(ctx).Model(&db_models.AssignmentSubmission{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}
