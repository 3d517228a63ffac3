package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhive/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Search(ctx context.Context, search string) ([]db_models.User, error)
	UpdateRoleByID(ctx context.Context, id uuid.UUID, role db_models.Role) (int64, error)
	UpdateRoleByEmail(ctx context.Context, email string, role db_models.Role) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Search matches the substring case-insensitively against name or email; an
// empty search returns everyone.
func (u *userRepository) Search(ctx context.Context, search string) ([]db_models.User, error) {
	var users []db_models.User
	q := u.db.WithContext(ctx)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userRepository) UpdateRoleByID(ctx context.Context, id uuid.UUID, role db_models.Role) (int64, error) {
	res := u.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", id).
		Update("role", role)
	return res.RowsAffected, res.Error
}

func (u *userRepository) UpdateRoleByEmail(ctx context.Context, email string, role db_models.Role) (int64, error) {
	res := u.db.WithContext(ctx).Model(&db_models.User{}).
		Where("email = ?", email).
		Update("role", role)
	return res.RowsAffected, res.Error
}

func (u *userRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := u.db.WithContext(ctx).Delete(&db_models.User{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
