package handler

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/Astemirdum/car-rating-service/cars/internal/errs"
	"github.com/Astemirdum/car-rating-service/cars/internal/model"
	md "github.com/Astemirdum/car-rating-service/pkg/middleware"
	"github.com/Astemirdum/car-rating-service/pkg/kafka"
	"github.com/Astemirdum/car-rating-service/pkg/validate"
	_ "github.com/Astemirdum/car-rating-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	carSvc   CarService
	statsLog StatsLog
	log      *zap.Logger
}

func New(carSvc CarService, statsLog StatsLog, log *zap.Logger) *Handler {
	if statsLog == nil {
		statsLog = noopStatsLog{}
	}
	return &Handler{
		carSvc:   carSvc,
		statsLog: statsLog,
		log:      log.Named("handler"),
	}
}

var apiPrefixes = []string{"/cars", "/rate", "/popular"}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			for _, prefix := range apiPrefixes {
				if strings.HasPrefix(p, prefix) {
					return false
				}
			}
			return true
		},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		metricsMW,
	)

	api.GET("/cars/", h.ListCars)
	api.POST("/cars/", h.CreateCar)
	api.GET("/cars/:id/", h.GetCar)
	api.POST("/rate/", h.Rate)
	api.GET("/popular/", h.Popular)
	api.GET("/popular/:limit/", h.Popular)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ListCars godoc
// @Summary List cars
// @Description Every registered car with its average rating.
// @Tags cars
// @Produce json
// @Success 200 {array} model.Car
// @Router /cars/ [get]
func (h *Handler) ListCars(c echo.Context) error {
	cars, err := h.carSvc.ListCars(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, cars)
}

// GetCar godoc
// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path int true "car id"
// @Success 200 {object} model.Car
// @Failure 404 {object} detail
// @Router /cars/{id}/ [get]
func (h *Handler) GetCar(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return detailError(http.StatusNotFound, msgNotFound)
	}
	car, err := h.carSvc.GetCar(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, car)
}

// CreateCar godoc
// @Summary Add car
// @Description The make/model pair is checked against the NHTSA vehicle catalog.
// @Tags cars
// @Accept json
// @Produce json
// @Param input body model.CreateCarRequest true "car"
// @Success 201 {object} model.Car
// @Failure 400 {object} detail
// @Failure 500 {object} detail
// @Router /cars/ [post]
func (h *Handler) CreateCar(c echo.Context) error {
	var req model.CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return detailError(http.StatusBadRequest, "JSON parse error - "+bindMessage(err))
	}
	car, err := h.carSvc.CreateCar(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	h.logStats(kafka.EventStats{
		EventType: kafka.EventCarCreated,
		CarID:     car.ID,
		Make:      car.Make,
		Model:     car.Model,
	})
	return c.JSON(http.StatusCreated, car)
}

// Rate godoc
// @Summary Rate car
// @Tags ratings
// @Accept json
// @Produce json
// @Param input body model.RateRequest true "rating"
// @Success 201 {object} model.Rating
// @Failure 400 {object} map[string][]string
// @Router /rate/ [post]
func (h *Handler) Rate(c echo.Context) error {
	var raw rateRequest
	if err := c.Bind(&raw); err != nil {
		return detailError(http.StatusBadRequest, "JSON parse error - "+bindMessage(err))
	}
	req, fe := raw.parse()
	if fe != nil {
		return fieldError(fe)
	}
	rating, err := h.carSvc.Rate(c.Request().Context(), req)
	if err != nil {
		var fe validate.FieldErrors
		switch {
		case errors.Is(err, errs.ErrCarNotFound):
			return pkNotExist(req.CarID)
		case errors.Is(err, errs.ErrInvalidRating) && !errors.As(err, &fe):
			return rateOutOfRange(req.Rate)
		}
		return h.httpError(err)
	}
	h.logStats(kafka.EventStats{
		EventType: kafka.EventCarRated,
		CarID:     rating.CarID,
		Rate:      rating.Rate,
	})
	return c.JSON(http.StatusCreated, rating)
}

var digitsRe = regexp.MustCompile(`^\d+$`)

// Popular godoc
// @Summary Popular cars
// @Description Cars ordered by number of votes, optionally limited.
// @Tags cars
// @Produce json
// @Param limit path int false "max number of cars"
// @Success 200 {array} model.Popular
// @Router /popular/ [get]
// @Router /popular/{limit}/ [get]
func (h *Handler) Popular(c echo.Context) error {
	var limit *int
	if p := c.Param("limit"); p != "" {
		if !digitsRe.MatchString(p) {
			return detailError(http.StatusNotFound, msgNotFound)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return detailError(http.StatusNotFound, msgNotFound)
		}
		limit = &n
	}
	cars, err := h.carSvc.Popular(c.Request().Context(), limit)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, cars)
}

func (h *Handler) logStats(ev kafka.EventStats) {
	if err := h.statsLog.Log(ev); err != nil {
		h.log.Warn("stats log", zap.Error(err), zap.String("event", string(ev.EventType)))
	}
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			return m
		}
	}
	return err.Error()
}
