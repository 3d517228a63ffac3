package response_models

import "learnhive/internal/models/db_models"

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// Enrollment is a payment read back with the assignment field normalized to a
// list; the stored value may be a scalar, a list, or absent.
type Enrollment struct {
	db_models.Payment
	Assignment []interface{} `json:"assignment"`
}
