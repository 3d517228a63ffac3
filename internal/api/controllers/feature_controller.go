package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type FeatureController struct {
	featureService services.FeatureServiceInterface
}

func NewFeatureController(featureService services.FeatureServiceInterface) *FeatureController {
	return &FeatureController{featureService: featureService}
}

func (f *FeatureController) ListFeatures(c *gin.Context) {
	features, err := f.featureService.ListFeatures(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, features)
}
