package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"learnhive/cmd/fx/application_fx"
	"learnhive/cmd/fx/assignment_fx"
	"learnhive/cmd/fx/class_fx"
	"learnhive/cmd/fx/controllers_fx"
	"learnhive/cmd/fx/db_fx"
	"learnhive/cmd/fx/feature_fx"
	"learnhive/cmd/fx/payment_fx"
	"learnhive/cmd/fx/review_fx"
	"learnhive/cmd/fx/user_fx"
	"learnhive/internal/api/controllers"
	"learnhive/internal/services"
	"learnhive/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		user_fx.Module,
		application_fx.Module,
		class_fx.Module,
		payment_fx.Module,
		assignment_fx.Module,
		review_fx.Module,
		feature_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("LearnHive is open on port %s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	applicationController *controllers.ApplicationController,
	classController *controllers.ClassController,
	paymentController *controllers.PaymentController,
	assignmentController *controllers.AssignmentController,
	reviewController *controllers.ReviewController,
	featureController *controllers.FeatureController,
	userService services.UserServiceInterface) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController, userController, applicationController, classController,
		paymentController, assignmentController, reviewController,
		featureController, userService)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	applicationController *controllers.ApplicationController,
	classController *controllers.ClassController,
	paymentController *controllers.PaymentController,
	assignmentController *controllers.AssignmentController,
	reviewController *controllers.ReviewController,
	featureController *controllers.FeatureController,
	userService services.UserServiceInterface) {

	authed := middleware.JWTAuthMiddleware()
	admin := middleware.AdminMiddleware(userService)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "LearnHive is open")
	})
	r.POST("/jwt", authController.IssueToken)

	// Admin mutations and the user list are guarded; everything else keeps
	// the open access of the source system.
	r.GET("/users", authed, admin, userController.ListUsers)
	r.GET("/users/:email", userController.GetUserByEmail)
	r.GET("/users/admin/:email", userController.IsAdmin)
	r.GET("/users/teacher/:email", userController.IsTeacher)
	r.GET("/users/student/:email", userController.IsStudent)
	r.POST("/users", userController.CreateUser)
	r.PATCH("/users/admin/:id", authed, admin, userController.PromoteToAdmin)
	r.PATCH("/users/role/:email", authed, admin, userController.PromoteToTeacher)
	r.DELETE("/users/:id", authed, admin, userController.DeleteUser)

	r.GET("/applications", applicationController.ListApplications)
	r.POST("/applications", applicationController.CreateApplication)
	r.PATCH("/applications/approve/:id", authed, admin, applicationController.Approve)
	r.PATCH("/applications/reject/:id", authed, admin, applicationController.Reject)
	r.PATCH("/applications/request-again/:id", applicationController.RequestAgain)

	r.GET("/classes", classController.ListClasses)
	r.POST("/classes", classController.CreateClass)
	r.GET("/classes/:email", classController.ListByTeacher)
	r.PATCH("/classes/approve/:id", authed, admin, classController.Approve)
	r.PATCH("/classes/reject/:id", authed, admin, classController.Reject)
	r.PATCH("/classes/:id", classController.UpdateClass)
	r.DELETE("/classes/:id", classController.DeleteClass)

	r.GET("/details/:id", classController.GetDetails)
	r.PATCH("/details/:id", classController.AddAssignment)

	r.GET("/all-classes", classController.ListAccepted)
	r.GET("/all-classes/:id", classController.GetAccepted)

	r.GET("/assignments", assignmentController.ListSubmissions)
	r.POST("/assignments", assignmentController.CreateSubmission)
	r.PATCH("/assignments/:id", assignmentController.UpdateSubmission)

	r.POST("/create-payment-intent", paymentController.CreatePaymentIntent)
	r.POST("/payments", paymentController.RecordPayment)
	r.GET("/payments/:email", paymentController.ListByEmail)
	r.GET("/myEnroll/:email", paymentController.MyEnrollments)
	r.GET("/enroll", paymentController.AllEnrollments)

	r.GET("/features", featureController.ListFeatures)
	r.GET("/reviews", reviewController.ListReviews)
	r.POST("/ter-reports", reviewController.CreateReport)
}
