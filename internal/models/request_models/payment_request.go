package request_models

import "encoding/json"

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// RecordPaymentRequest is stored verbatim. Assignment is kept raw because
// callers write either a scalar or a list into it.
type RecordPaymentRequest struct {
	Email      string          `json:"email" binding:"required,email"`
	Price      float64         `json:"price"`
	ClassID    string          `json:"classId"`
	Title      string          `json:"title"`
	Assignment json.RawMessage `json:"assignment"`
}
