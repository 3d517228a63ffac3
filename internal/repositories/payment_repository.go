package repositories

import (
	"context"

	"gorm.io/gorm"

	"learnhive/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	FindByEmail(ctx context.Context, email string) ([]db_models.Payment, error)
	FindAll(ctx context.Context) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Create(payment).Error
}

func (p *paymentRepository) FindByEmail(ctx context.Context, email string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).Where("email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (p *paymentRepository) FindAll(ctx context.Context) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	if err := p.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
