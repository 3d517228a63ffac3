package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

func (u *UserController) ListUsers(c *gin.Context) {
	users, err := u.userService.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByEmail returns the user document, or null on a miss, matching the
// findOne contract clients were written against.
func (u *UserController) GetUserByEmail(c *gin.Context) {
	user, err := u.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// The three probes below are projections of the single role capability; an
// unknown email answers false rather than erroring.

func (u *UserController) IsAdmin(c *gin.Context) {
	role, err := u.userService.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": role == db_models.RoleAdmin})
}

func (u *UserController) IsTeacher(c *gin.Context) {
	role, err := u.userService.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teacher": role == db_models.RoleTeacher})
}

func (u *UserController) IsStudent(c *gin.Context) {
	role, err := u.userService.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": role == db_models.RoleStudent})
}

func (u *UserController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := u.userService.CreateIfAbsent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (u *UserController) PromoteToAdmin(c *gin.Context) {
	result, err := u.userService.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (u *UserController) PromoteToTeacher(c *gin.Context) {
	result, err := u.userService.PromoteToTeacher(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (u *UserController) DeleteUser(c *gin.Context) {
	result, err := u.userService.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
