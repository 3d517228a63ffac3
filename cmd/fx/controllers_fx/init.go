package controllers_fx

import (
	"go.uber.org/fx"

	"learnhive/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewApplicationController),
	fx.Provide(controllers.NewClassController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewAssignmentController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewFeatureController))
