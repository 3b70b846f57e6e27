package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal     = "INTERNAL"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 422: every unknown code is assumed to
// be a business rule rejection, never a server fault.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,
	ErrCodeValidation:  http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	"TOKEN_EXPIRED":     http.StatusUnauthorized,
	"TOKEN_INVALID":     http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound:           http.StatusNotFound,
	"ALREADY_EXISTS":          http.StatusConflict,
	"ALREADY_INVOICED":        http.StatusConflict,
	"CONCURRENCY_CONFLICT":    http.StatusConflict,
	"CONCURRENT_MODIFICATION": http.StatusConflict,

	// business rule rejections
	"INVALID_INPUT":           http.StatusBadRequest,
	"INVALID_SELLER":          http.StatusBadRequest,
	"INVALID_CUSTOMER":        http.StatusBadRequest,
	"INVALID_REFERENCE":       http.StatusBadRequest,
	"INVALID_PRICE":           http.StatusBadRequest,
	"INVALID_DELIVERY_CHARGE": http.StatusBadRequest,
	"INVALID_AMOUNT":          http.StatusBadRequest,
	"INVALID_BILL_NUMBER":     http.StatusBadRequest,
	"INVALID_DATE":            http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD":  http.StatusBadRequest,
	"INVALID_NAME":            http.StatusBadRequest,
	"INVALID_STATUS":          http.StatusBadRequest,

	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"INVALID_TRANSITION":   http.StatusUnprocessableEntity,
	"NO_ELIGIBLE_ORDERS":   http.StatusUnprocessableEntity,
	"BILL_REFERENCED":      http.StatusUnprocessableEntity,
	"INSUFFICIENT_BALANCE": http.StatusUnprocessableEntity,

	"STORE_NOT_CONFIGURED": http.StatusServiceUnavailable,
}

// GetHTTPStatus resolves an error code to an HTTP status code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
