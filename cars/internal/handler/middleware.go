package handler

import (
	"strconv"
	"time"

	"github.com/Astemirdum/car-rating-service/cars/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func metricsMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = 500
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}
		}
		metrics.RequestDuration.
			WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
