package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type ApplicationController struct {
	applicationService services.ApplicationServiceInterface
}

func NewApplicationController(applicationService services.ApplicationServiceInterface) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

func (a *ApplicationController) ListApplications(c *gin.Context) {
	applications, err := a.applicationService.ListApplications(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (a *ApplicationController) CreateApplication(c *gin.Context) {
	var req request_models.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.applicationService.CreateApplication(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (a *ApplicationController) Approve(c *gin.Context) {
	a.setStatus(c, db_models.ApplicationAccepted)
}

func (a *ApplicationController) Reject(c *gin.Context) {
	a.setStatus(c, db_models.ApplicationRejected)
}

// RequestAgain resets a decided application back to pending so the applicant
// can be reconsidered.
func (a *ApplicationController) RequestAgain(c *gin.Context) {
	a.setStatus(c, db_models.ApplicationPending)
}

func (a *ApplicationController) setStatus(c *gin.Context, status db_models.ApplicationStatus) {
	result, err := a.applicationService.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
