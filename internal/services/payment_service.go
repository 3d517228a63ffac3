package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"learnhive/internal/infra"
	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/models/response_models"
	"learnhive/internal/repositories"
	"learnhive/pkg/utils"
)

type PaymentServiceInterface interface {
	CreateIntent(ctx context.Context, price float64) (*response_models.PaymentIntentResponse, error)
	RecordPayment(ctx context.Context, req request_models.RecordPaymentRequest) (*response_models.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]db_models.Payment, error)
	ListAll(ctx context.Context) ([]db_models.Payment, error)
	EnrollmentsByEmail(ctx context.Context, email string) ([]response_models.Enrollment, error)
	AllEnrollments(ctx context.Context) ([]response_models.Enrollment, error)
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	gateway     infra.PaymentGateway
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, gateway infra.PaymentGateway) PaymentServiceInterface {
	return &PaymentService{paymentRepo: paymentRepo, gateway: gateway}
}

// MinorUnits converts a decimal price to integer cents, truncating anything
// beyond two decimal places toward zero (19.999 is 1999, not 2000). The
// conversion goes through the shortest decimal representation so that a price
// like 19.99 yields 1999 rather than falling victim to binary float error.
func MinorUnits(price float64) int64 {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	sign := int64(1)
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	frac += "00"

	w, _ := strconv.ParseInt(whole, 10, 64)
	f, _ := strconv.ParseInt(frac[:2], 10, 64)
	return sign * (w*100 + f)
}

func (p *PaymentService) CreateIntent(ctx context.Context, price float64) (*response_models.PaymentIntentResponse, error) {
	if price <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	clientSecret, err := p.gateway.CreateIntent(ctx, MinorUnits(price))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentGateway, err)
	}

	return &response_models.PaymentIntentResponse{ClientSecret: clientSecret}, nil
}

// RecordPayment stores the document verbatim after the client reports a
// confirmed charge. There is no server-side check against a captured charge
// and no idempotency key; callers that retry will insert twice.
func (p *PaymentService) RecordPayment(ctx context.Context, req request_models.RecordPaymentRequest) (*response_models.InsertResult, error) {
	payment := &db_models.Payment{
		Email:      req.Email,
		Price:      req.Price,
		ClassID:    req.ClassID,
		Title:      req.Title,
		Assignment: datatypes.JSON(req.Assignment),
	}
	if err := p.paymentRepo.Insert(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.InsertResult{Acknowledged: true, InsertedID: payment.ID.String()}, nil
}

func (p *PaymentService) ListByEmail(ctx context.Context, email string) ([]db_models.Payment, error) {
	payments, err := p.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payments == nil {
		payments = []db_models.Payment{}
	}
	return payments, nil
}

func (p *PaymentService) ListAll(ctx context.Context) ([]db_models.Payment, error) {
	payments, err := p.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payments == nil {
		payments = []db_models.Payment{}
	}
	return payments, nil
}

func (p *PaymentService) EnrollmentsByEmail(ctx context.Context, email string) ([]response_models.Enrollment, error) {
	payments, err := p.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEnrollments(payments), nil
}

func (p *PaymentService) AllEnrollments(ctx context.Context) ([]response_models.Enrollment, error) {
	payments, err := p.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEnrollments(payments), nil
}

// toEnrollments normalizes the stored assignment value to a list; writers put
// either a scalar or a list there, readers always see a list.
func toEnrollments(payments []db_models.Payment) []response_models.Enrollment {
	enrollments := make([]response_models.Enrollment, 0, len(payments))
	for _, payment := range payments {
		enrollments = append(enrollments, response_models.Enrollment{
			Payment:    payment,
			Assignment: normalizeAssignment(payment.Assignment),
		})
	}
	return enrollments
}

func normalizeAssignment(raw datatypes.JSON) []interface{} {
	if len(raw) == 0 {
		return []interface{}{}
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return []interface{}{}
	}
	switch t := v.(type) {
	case nil:
		return []interface{}{}
	case []interface{}:
		return t
	default:
		return []interface{}{t}
	}
}
