package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use case error onto an HTTP status. The error text goes
// to the client as-is; internal failures get a generic message instead.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, order.ErrNoItems):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())

	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, queries.ErrInvalidCredentials):
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())

	case errors.Is(err, order.ErrDriverMismatch):
		return errorJSON(ctx, http.StatusForbidden, err.Error())

	case errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, commands.ErrUsernameTaken):
		return errorJSON(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, commands.ErrConfirmationNumbersExhausted):
		return errorJSON(ctx, http.StatusServiceUnavailable, err.Error())

	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
