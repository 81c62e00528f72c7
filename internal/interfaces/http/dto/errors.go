package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeInvalidToken = "INVALID_TOKEN"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	// Input and validation errors -> 400
	ErrCodeBadRequest:      http.StatusBadRequest,
	"INVALID_INPUT":        http.StatusBadRequest,
	"MISSING_PARAMETER":    http.StatusBadRequest,
	"INVALID_DATE_FORMAT":  http.StatusBadRequest,
	"INVALID_EMAIL":        http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_PASSWORD":     http.StatusBadRequest,
	"INVALID_PRICE":        http.StatusBadRequest,
	"INVALID_STOCK":        http.StatusBadRequest,
	"INVALID_QUANTITY":     http.StatusBadRequest,
	"INVALID_IMAGE_URL":    http.StatusBadRequest,
	"INVALID_PRODUCT":      http.StatusBadRequest,
	"INVALID_USER":         http.StatusBadRequest,
	"INVALID_ORDER_STATUS": http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	ErrCodeInvalidToken:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Resource errors
	"NOT_FOUND":            http.StatusNotFound,
	"PRODUCT_NOT_FOUND":    http.StatusNotFound,
	"CATEGORY_NOT_FOUND":   http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"EMAIL_TAKEN":          http.StatusConflict,
	"CATEGORY_NOT_EMPTY":   http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule errors -> 422
	"INVALID_STATE":           http.StatusUnprocessableEntity,
	"INVALID_ORDER_STATE":     http.StatusUnprocessableEntity,
	"ORDER_ALREADY_CANCELLED": http.StatusUnprocessableEntity,
	"EMPTY_ORDER":             http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":      http.StatusUnprocessableEntity,
	"PRODUCT_INACTIVE":        http.StatusUnprocessableEntity,

	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
