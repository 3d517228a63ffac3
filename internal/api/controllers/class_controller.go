package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type ClassController struct {
	classService services.ClassServiceInterface
}

func NewClassController(classService services.ClassServiceInterface) *ClassController {
	return &ClassController{classService: classService}
}

func (cc *ClassController) CreateClass(c *gin.Context) {
	var req request_models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := cc.classService.CreateClass(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (cc *ClassController) ListClasses(c *gin.Context) {
	classes, err := cc.classService.ListClasses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (cc *ClassController) ListByTeacher(c *gin.Context) {
	classes, err := cc.classService.ListByTeacher(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListAccepted serves the public catalogue: accepted classes only, paginated,
// optionally sorted by price. Defaults are page=1, limit=10; sort=desc means
// descending price, anything else ascending.
func (cc *ClassController) ListAccepted(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	result, err := cc.classService.ListAccepted(c.Request.Context(), page, limit, c.Query("sort"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (cc *ClassController) GetAccepted(c *gin.Context) {
	class, err := cc.classService.GetAccepted(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// GetDetails returns a class regardless of status, including its assignment
// list; the teacher dashboard reads pending classes through this route.
func (cc *ClassController) GetDetails(c *gin.Context) {
	class, err := cc.classService.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (cc *ClassController) Approve(c *gin.Context) {
	cc.setStatus(c, db_models.ClassAccepted)
}

func (cc *ClassController) Reject(c *gin.Context) {
	cc.setStatus(c, db_models.ClassRejected)
}

func (cc *ClassController) setStatus(c *gin.Context, status db_models.ClassStatus) {
	result, err := cc.classService.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (cc *ClassController) UpdateClass(c *gin.Context) {
	var req request_models.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := cc.classService.UpdateClass(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (cc *ClassController) AddAssignment(c *gin.Context) {
	var req request_models.AddAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := cc.classService.AppendAssignment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (cc *ClassController) DeleteClass(c *gin.Context) {
	result, err := cc.classService.DeleteClass(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
