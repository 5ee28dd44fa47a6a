package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appErrors "paytrack/internal/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

var notFoundErrors = []error{
	appErrors.ErrUserNotFound,
	appErrors.ErrReminderNotFound,
	appErrors.ErrAssetNotFound,
	appErrors.ErrGoalNotFound,
	appErrors.ErrTransactionNotFound,
}

var badRequestErrors = []error{
	appErrors.ErrInvalidTitle,
	appErrors.ErrInvalidAmount,
	appErrors.ErrInvalidDueDay,
	appErrors.ErrInvalidCategory,
	appErrors.ErrInvalidPeriod,
}

// respondError maps application errors onto HTTP status codes. Unrecognized
// errors surface as a generic 500 without leaking internals.
func respondError(c echo.Context, err error) error {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: sentinel.Error()})
		}
	}
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: sentinel.Error()})
		}
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: appErrors.ErrInternalServer.Error()})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).Uint("id", &id).BindError(); err != nil {
		return 0, err
	}
	return id, nil
}
