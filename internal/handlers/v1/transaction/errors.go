package transaction

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// toHumaError maps service errors onto HTTP statuses. Anything unrecognised
// is reported as a 500 with message.
func toHumaError(err error, message string) error {
	var validationErr *model.ValidationError
	var filterErr *filter.InvalidFilterError

	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &filterErr):
		return huma.NewError(http.StatusBadRequest, filterErr.Reason)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "transaction not found")
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
