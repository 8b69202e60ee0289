package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error to its HTTP status. Orchestrator errors map by
// category; errors of the data operations map by their cause.
func statusOf(err error) int {
	switch fulfillment.CategoryOf(err) {
	case fulfillment.CategoryValidation:
		if errors.Is(err, fulfillment.ErrUnknownCarrier) {
			return http.StatusUnprocessableEntity
		}
		if errors.Is(err, fulfillment.ErrLineItemNotInOrder) {
			return http.StatusNotFound
		}
		return http.StatusConflict
	case fulfillment.CategoryLookup, fulfillment.CategoryCreation, fulfillment.CategoryRefresh:
		if errors.Is(err, errs.ErrObjectNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	case fulfillment.CategoryDeletion:
		if errors.Is(err, errs.ErrObjectNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrOrderNotActivated),
		errors.Is(err, services.ErrNoCarriersForDestination),
		errors.Is(err, commands.ErrOrderHasNoDestination),
		errors.Is(err, commands.ErrCarrierNotOffered):
		return http.StatusConflict
	case errors.Is(err, fulfillment.ErrRegistryClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	code := statusOf(err)
	body := Error{Code: code, Message: err.Error()}
	if code == http.StatusInternalServerError {
		body.Message = http.StatusText(code)
		c.Logger().Error(err)
	}

	var fe *fulfillment.Error
	if errors.As(err, &fe) {
		body.Category = string(fe.Category)
		body.State = fe.State.String()
	}
	return c.JSON(code, body)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
