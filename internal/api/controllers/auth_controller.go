package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhive/internal/models/request_models"
	"learnhive/pkg/utils"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken signs a bearer credential for the supplied principal. The
// identity is trusted as given; sign-in happens upstream of this API.
func (a *AuthController) IssueToken(c *gin.Context) {
	var req request_models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := utils.CreateToken(req.Email, req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
