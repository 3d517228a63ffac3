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

type AssignmentServiceInterface interface {
	ListSubmissions(ctx context.Context) ([]db_models.AssignmentSubmission, error)
	CreateSubmission(ctx context.Context, req request_models.CreateSubmissionRequest) (*response_models.InsertResult, error)
	UpdateSubmission(ctx context.Context, id string, req request_models.UpdateSubmissionRequest) (*response_models.UpdateResult, error)
}

type AssignmentService struct {
	assignmentRepo repositories.AssignmentRepository
}

func NewAssignmentService(assignmentRepo repositories.AssignmentRepository) AssignmentServiceInterface {
	return &AssignmentService{assignmentRepo: assignmentRepo}
}

func (a *AssignmentService) ListSubmissions(ctx context.Context) ([]db_models.AssignmentSubmission, error) {
	submissions, err := a.assignmentRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if submissions == nil {
		submissions = []db_models.AssignmentSubmission{}
	}
	return submissions, nil
}

// CreateSubmission appends the submission with the server timestamp; no check
// that courseId or userEmail reference real rows.
func (a *AssignmentService) CreateSubmission(ctx context.Context, req request_models.CreateSubmissionRequest) (*response_models.InsertResult, error) {
	submission := &db_models.AssignmentSubmission{
		CourseID:   req.CourseID,
		UserEmail:  req.UserEmail,
		Submission: req.Submission,
		Submit:     req.Submit,
	}
	if err := a.assignmentRepo.Insert(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.InsertResult{Acknowledged: true, InsertedID: submission.ID.String()}, nil
}

// UpdateSubmission sets only the fields present in the body.
func (a *AssignmentService) UpdateSubmission(ctx context.Context, id string, req request_models.UpdateSubmissionRequest) (*response_models.UpdateResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &response_models.UpdateResult{Acknowledged: true}, nil
	}

	fields := map[string]interface{}{}
	if req.Submission != nil {
		fields["submission"] = *req.Submission
	}
	if req.Submit != nil {
		fields["submit"] = *req.Submit
	}
	if len(fields) == 0 {
		return &response_models.UpdateResult{Acknowledged: true}, nil
	}

	affected, err := a.assignmentRepo.UpdateFields(ctx, uid, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}
