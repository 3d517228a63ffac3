package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhive/internal/models/request_models"
	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePaymentIntent asks the gateway for a card charge intent and hands the
// client secret back; the charge completes client-side.
func (p *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req request_models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (p *PaymentController) RecordPayment(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (p *PaymentController) ListByEmail(c *gin.Context) {
	payments, err := p.paymentService.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (p *PaymentController) MyEnrollments(c *gin.Context) {
	enrollments, err := p.paymentService.EnrollmentsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func (p *PaymentController) AllEnrollments(c *gin.Context) {
	enrollments, err := p.paymentService.AllEnrollments(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
