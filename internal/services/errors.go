package services

import "errors"

var (
	ErrConflict           = errors.New("[service]: conflict")
	ErrUnauthorized       = errors.New("[service]: unauthorized")
	ErrRecordNotFound     = errors.New("[service]: record not found")
	ErrServiceUnavailable = errors.New("[service]: service unavailable")
	ErrInternal           = errors.New("[service]: internal error")
	ErrUnknown            = errors.New("[service]: unknown error")
)
