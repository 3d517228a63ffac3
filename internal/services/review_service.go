package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"learnhive/internal/models/db_models"
	"learnhive/internal/models/response_models"
	"learnhive/internal/repositories"
	"learnhive/pkg/utils"
)

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context) ([]db_models.Review, error)
	CreateReport(ctx context.Context, payload map[string]interface{}) (*response_models.InsertResult, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (r *ReviewService) ListReviews(ctx context.Context) ([]db_models.Review, error) {
	reviews, err := r.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reviews == nil {
		reviews = []db_models.Review{}
	}
	return reviews, nil
}

// CreateReport stores the payload as-is; the well-known fields are lifted out
// for querying, the rest lands in the report column. No validation.
func (r *ReviewService) CreateReport(ctx context.Context, payload map[string]interface{}) (*response_models.InsertResult, error) {
	review := &db_models.Review{}

	if name, ok := payload["name"].(string); ok {
		review.Name = name
	}
	if rating, ok := payload["rating"].(float64); ok {
		review.Rating = rating
	}
	if description, ok := payload["description"].(string); ok {
		review.Description = description
	}
	if raw, err := json.Marshal(payload); err == nil {
		review.Report = datatypes.JSON(raw)
	}

	if err := r.reviewRepo.Insert(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.InsertResult{Acknowledged: true, InsertedID: review.ID.String()}, nil
}
