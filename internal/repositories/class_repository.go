package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnhive/internal/models/db_models"
)

type ClassRepository interface {
	Insert(ctx context.Context, class *db_models.Class) error
	FindAll(ctx context.Context) ([]db_models.Class, error)
	FindByTeacher(ctx context.Context, email string) ([]db_models.Class, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Class, error)
	FindAccepted(ctx context.Context, page, limit int, priceDesc bool) ([]db_models.Class, error)
	FindAcceptedByID(ctx context.Context, id uuid.UUID) (*db_models.Class, error)
	CountAccepted(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ClassStatus) (int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	AppendAssignment(ctx context.Context, id uuid.UUID, assignment db_models.ClassAssignment) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// AppendToAssignmentList appends one entry to the stored JSON list,
// preserving prior entries. An empty or null column counts as an empty list.
func AppendToAssignmentList(raw datatypes.JSON, assignment db_models.ClassAssignment) (datatypes.JSON, error) {
	var assignments []db_models.ClassAssignment
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &assignments); err != nil {
			return nil, err
		}
	}
	assignments = append(assignments, assignment)

	out, err := json.Marshal(assignments)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (c *classRepository) Insert(ctx context.Context, class *db_models.Class) error {
	return c.db.WithContext(ctx).Create(class).Error
}

func (c *classRepository) FindAll(ctx context.Context) ([]db_models.Class, error) {
	var classes []db_models.Class
	if err := c.db.WithContext(ctx).Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (c *classRepository) FindByTeacher(ctx context.Context, email string) ([]db_models.Class, error) {
	var classes []db_models.Class
	err := c.db.WithContext(ctx).Where("email = ?", email).
		Order("created_at DESC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (c *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Class, error) {
	var class db_models.Class
	err := c.db.WithContext(ctx).First(&class, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (c *classRepository) FindAccepted(ctx context.Context, page, limit int, priceDesc bool) ([]db_models.Class, error) {
	order := "price ASC"
	if priceDesc {
		order = "price DESC"
	}

	var classes []db_models.Class
	err := c.db.WithContext(ctx).
		Where("status = ?", db_models.ClassAccepted).
		Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (c *classRepository) FindAcceptedByID(ctx context.Context, id uuid.UUID) (*db_models.Class, error) {
	var class db_models.Class
	err := c.db.WithContext(ctx).
		Where("status = ?", db_models.ClassAccepted).
		First(&class, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (c *classRepository) CountAccepted(ctx context.Context) (int64, error) {
	var total int64
	err := c.db.WithContext(ctx).Model(&db_models.Class{}).
		Where("status = ?", db_models.ClassAccepted).
		Count(&total).Error
	return total, err
}

// UpdateStatus overwrites unconditionally, same as application transitions.
func (c *classRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ClassStatus) (int64, error) {
	res := c.db.WithContext(ctx).Model(&db_models.Class{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (c *classRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := c.db.WithContext(ctx).Model(&db_models.Class{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// AppendAssignment grows the assignment list by one inside a transaction,
// preserving prior entries. Single-row read-modify-write; the row is locked
// for the duration.
func (c *classRepository) AppendAssignment(ctx context.Context, id uuid.UUID, assignment db_models.ClassAssignment) (int64, error) {
	var affected int64
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class db_models.Class
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&class, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		updated, err := AppendToAssignmentList(class.Assignments, assignment)
		if err != nil {
			return err
		}

		res := tx.Model(&class).Update("assignments", updated)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (c *classRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := c.db.WithContext(ctx).Delete(&db_models.Class{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
