package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhive/internal/infra"
	"learnhive/internal/repositories"
	"learnhive/internal/services"
)

var Module = fx.Provide(
	provideGateway, providePaymentRepo, providePaymentService)

func provideGateway() infra.PaymentGateway {
	return infra.NewStripeGateway()
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(paymentRepo repositories.PaymentRepository, gateway infra.PaymentGateway) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo, gateway)
}
