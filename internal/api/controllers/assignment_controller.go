package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhive/internal/models/request_models"
	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type AssignmentController struct {
	assignmentService services.AssignmentServiceInterface
}

func NewAssignmentController(assignmentService services.AssignmentServiceInterface) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

func (a *AssignmentController) ListSubmissions(c *gin.Context) {
	submissions, err := a.assignmentService.ListSubmissions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

func (a *AssignmentController) CreateSubmission(c *gin.Context) {
	var req request_models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.assignmentService.CreateSubmission(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (a *AssignmentController) UpdateSubmission(c *gin.Context) {
	var req request_models.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.assignmentService.UpdateSubmission(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
