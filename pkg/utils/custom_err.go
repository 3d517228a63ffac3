package utils

import "errors"

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrClassNotFound     = errors.New("class not found")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrInvalidAmount     = errors.New("invalid payment amount")
	ErrPaymentGateway    = errors.New("payment gateway error")
	ErrDatabaseError     = errors.New("database error")
)
