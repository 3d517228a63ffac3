package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

func (r *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := r.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReport accepts whatever payload the client sends and stores it; the
// report body has never had a schema.
func (r *ReviewController) CreateReport(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := r.reviewService.CreateReport(c.Request.Context(), payload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
