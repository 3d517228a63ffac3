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

type ClassServiceInterface interface {
	CreateClass(ctx context.Context, req request_models.CreateClassRequest) (*response_models.InsertResult, error)
	ListClasses(ctx context.Context) ([]db_models.Class, error)
	ListByTeacher(ctx context.Context, email string) ([]db_models.Class, error)
	ListAccepted(ctx context.Context, page, limit int, sort string) (*response_models.PaginatedClassesResponse, error)
	GetAccepted(ctx context.Context, id string) (*db_models.Class, error)
	GetDetails(ctx context.Context, id string) (*db_models.Class, error)
	SetStatus(ctx context.Context, id string, status db_models.ClassStatus) (*response_models.UpdateResult, error)
	UpdateClass(ctx context.Context, id string, req request_models.UpdateClassRequest) (*response_models.UpdateResult, error)
	AppendAssignment(ctx context.Context, id string, req request_models.AddAssignmentRequest) (*response_models.UpdateResult, error)
	DeleteClass(ctx context.Context, id string) (*response_models.DeleteResult, error)
}

type ClassService struct {
	classRepo repositories.ClassRepository
}

func NewClassService(classRepo repositories.ClassRepository) ClassServiceInterface {
	return &ClassService{classRepo: classRepo}
}

func (s *ClassService) CreateClass(ctx context.Context, req request_models.CreateClassRequest) (*response_models.InsertResult, error) {
	class := &db_models.Class{
		Email:       req.Email,
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Status:      db_models.ClassPending,
	}
	if err := s.classRepo.Insert(ctx, class); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.InsertResult{Acknowledged: true, InsertedID: class.ID.String()}, nil
}

func (s *ClassService) ListClasses(ctx context.Context) ([]db_models.Class, error) {
	classes, err := s.classRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if classes == nil {
		classes = []db_models.Class{}
	}
	return classes, nil
}

func (s *ClassService) ListByTeacher(ctx context.Context, email string) ([]db_models.Class, error) {
	classes, err := s.classRepo.FindByTeacher(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if classes == nil {
		classes = []db_models.Class{}
	}
	return classes, nil
}

// ListAccepted returns one page of accepted classes plus the total accepted
// count. sort selects the price order: "desc" descending, any other value
// (including empty) ascending.
func (s *ClassService) ListAccepted(ctx context.Context, page, limit int, sort string) (*response_models.PaginatedClassesResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	total, err := s.classRepo.CountAccepted(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	classes, err := s.classRepo.FindAccepted(ctx, page, limit, sort == "desc")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if classes == nil {
		classes = []db_models.Class{}
	}

	return &response_models.PaginatedClassesResponse{Total: total, Classes: classes}, nil
}

func (s *ClassService) GetAccepted(ctx context.Context, id string) (*db_models.Class, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	class, err := s.classRepo.FindAcceptedByID(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return class, nil
}

func (s *ClassService) GetDetails(ctx context.Context, id string) (*db_models.Class, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	class, err := s.classRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return class, nil
}

func (s *ClassService) SetStatus(ctx context.Context, id string, status db_models.ClassStatus) (*response_models.UpdateResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &response_models.UpdateResult{Acknowledged: true}, nil
	}

	affected, err := s.classRepo.UpdateStatus(ctx, uid, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

// UpdateClass overwrites the editable fields verbatim; there is no gate on
// the class's current status.
func (s *ClassService) UpdateClass(ctx context.Context, id string, req request_models.UpdateClassRequest) (*response_models.UpdateResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &response_models.UpdateResult{Acknowledged: true}, nil
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"price":       req.Price,
		"description": req.Description,
	}
	affected, err := s.classRepo.UpdateFields(ctx, uid, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (s *ClassService) AppendAssignment(ctx context.Context, id string, req request_models.AddAssignmentRequest) (*response_models.UpdateResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &response_models.UpdateResult{Acknowledged: true}, nil
	}

	assignment := db_models.ClassAssignment{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}
	affected, err := s.classRepo.AppendAssignment(ctx, uid, assignment)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (s *ClassService) DeleteClass(ctx context.Context, id string) (*response_models.DeleteResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &response_models.DeleteResult{Acknowledged: true}, nil
	}

	affected, err := s.classRepo.DeleteByID(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}
