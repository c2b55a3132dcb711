package http

import (
	"errors"
	"net/http"

	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps the domain error taxonomy onto HTTP status codes.
//
// The forbidden/conflict split matters for clients: 403 means this actor may
// never perform the operation on this object, 409 means the operation was
// valid but the order's state has moved past it.
func writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
