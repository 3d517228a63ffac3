package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/models/response_models"
	"learnhive/internal/repositories"
	"learnhive/pkg/utils"
)

type UserServiceInterface interface {
	ListUsers(ctx context.Context, search string) ([]db_models.User, error)
	GetByEmail(ctx context.Context, email string) (*db_models.User, error)
	GetRole(ctx context.Context, email string) (db_models.Role, error)
	CreateIfAbsent(ctx context.Context, req request_models.CreateUserRequest) (*response_models.InsertResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*response_models.UpdateResult, error)
	PromoteToTeacher(ctx context.Context, email string) (*response_models.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (*response_models.DeleteResult, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (u *UserService) ListUsers(ctx context.Context, search string) ([]db_models.User, error) {
	users, err := u.userRepo.Search(ctx, search)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if users == nil {
		users = []db_models.User{}
	}
	return users, nil
}

func (u *UserService) GetByEmail(ctx context.Context, email string) (*db_models.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

// GetRole is the single role capability behind the three boolean probe
// endpoints. An unknown email resolves to the empty role, never an error.
func (u *UserService) GetRole(ctx context.Context, email string) (db_models.Role, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

// CreateIfAbsent registers a user on first sign-in. A duplicate email returns
// the sentinel body instead of an error. The email column is uniquely
// indexed, so two concurrent sign-ins cannot both insert; the loser of the
// race gets the same sentinel.
func (u *UserService) CreateIfAbsent(ctx context.Context, req request_models.CreateUserRequest) (*response_models.InsertResult, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return &response_models.InsertResult{Message: "user already exists", InsertedID: nil}, nil
	}

	user := &db_models.User{
		Email: req.Email,
		Name:  req.Name,
		Role:  db_models.Role(req.Role),
		Phone: req.Phone,
		Photo: req.Photo,
	}
	if err := u.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &response_models.InsertResult{Message: "user already exists", InsertedID: nil}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.InsertResult{Acknowledged: true, InsertedID: user.ID.String()}, nil
}

func (u *UserService) PromoteToAdmin(ctx context.Context, id string) (*response_models.UpdateResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		// A malformed id matches nothing, same as a non-matching filter.
		return &response_models.UpdateResult{Acknowledged: true}, nil
	}

	affected, err := u.userRepo.UpdateRoleByID(ctx, uid, db_models.RoleAdmin)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (u *UserService) PromoteToTeacher(ctx context.Context, email string) (*response_models.UpdateResult, error) {
	affected, err := u.userRepo.UpdateRoleByEmail(ctx, email, db_models.RoleTeacher)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (u *UserService) DeleteByID(ctx context.Context, id string) (*response_models.DeleteResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &response_models.DeleteResult{Acknowledged: true}, nil
	}

	affected, err := u.userRepo.DeleteByID(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}
