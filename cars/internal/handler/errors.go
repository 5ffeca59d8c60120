package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/car-rating-service/cars/internal/errs"
	"github.com/Astemirdum/car-rating-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	msgMakeNotFound    = "Requested make does not exist."
	msgModelNotFound   = "Requested model does not exist."
	msgUnreachable     = "Could not reach external API. Check your Internet connection."
	msgNotUnique       = "The fields make, model must make a unique set."
	msgNotFound        = "Not found."
	msgRequired        = "This field is required."
	msgRateTooHigh     = "Ensure this value is less than or equal to 5."
	msgRateTooLow      = "Ensure this value is greater than or equal to 1."
	msgInvalidInteger  = "A valid integer is required."
	msgIncorrectPKType = "Incorrect type. Expected pk value, received %s."
	msgPKNotExist      = "Invalid pk \"%d\" - object does not exist."
)

type detail struct {
	Detail string `json:"detail"`
}

func detailError(code int, msg string) *echo.HTTPError {
	return echo.NewHTTPError(code, detail{Detail: msg})
}

// fieldError builds an HTTP 400 whose body is a field → messages object.
// The map is converted so echo serializes it as is instead of as an error.
func fieldError(fe validate.FieldErrors) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, map[string][]string(fe))
}

func pkNotExist(carID int64) *echo.HTTPError {
	fe := validate.FieldErrors{}
	fe.Add("car_id", fmt.Sprintf(msgPKNotExist, carID))
	return fieldError(fe)
}

func rateOutOfRange(rate int) *echo.HTTPError {
	fe := validate.FieldErrors{}
	if rate < 1 {
		fe.Add("rate", msgRateTooLow)
	} else {
		fe.Add("rate", msgRateTooHigh)
	}
	return fieldError(fe)
}

func (h *Handler) httpError(err error) error {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		return fieldError(fe)
	case errors.Is(err, errs.ErrMakeNotFound):
		return detailError(http.StatusBadRequest, msgMakeNotFound)
	case errors.Is(err, errs.ErrModelNotFound):
		return detailError(http.StatusBadRequest, msgModelNotFound)
	case errors.Is(err, errs.ErrDuplicateCar):
		return echo.NewHTTPError(http.StatusBadRequest, map[string][]string{
			"non_field_errors": {msgNotUnique},
		})
	case errors.Is(err, errs.ErrUpstreamUnreachable):
		h.log.Warn("vehicle lookup failed", zap.Error(err))
		return detailError(http.StatusInternalServerError, msgUnreachable)
	case errors.Is(err, errs.ErrInvalidRating):
		fe = validate.FieldErrors{}
		fe.Add("rate", msgRateTooLow)
		fe.Add("rate", msgRateTooHigh)
		return fieldError(fe)
	case errors.Is(err, errs.ErrCarNotFound):
		return detailError(http.StatusNotFound, msgNotFound)
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
