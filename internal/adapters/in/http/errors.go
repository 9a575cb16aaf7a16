package http

import (
	"errors"
	"net/http"

	"cargopool/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError translates typed core errors into HTTP status codes. Validation
// failures map to 400, authorization to 403, missing records to 404, and
// every guard or concurrency failure to 409 so clients can retry with fresh
// state.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorResponse{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrOrderNotEligible),
		errors.Is(err, errs.ErrDuplicateActivePayment),
		errors.Is(err, errs.ErrImmutable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrEmptySelection):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeBadRequest is for malformed payloads that never reach the core.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
