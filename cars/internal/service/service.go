package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Astemirdum/car-rating-service/cars/internal/errs"
	"github.com/Astemirdum/car-rating-service/cars/internal/metrics"
	"github.com/Astemirdum/car-rating-service/cars/internal/model"
	carsRepo "github.com/Astemirdum/car-rating-service/cars/internal/repository"
	"github.com/Astemirdum/car-rating-service/pkg/validate"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// Verifier confirms a make/model pair against an external vehicle catalog.
type Verifier interface {
	Verify(ctx context.Context, carMake, carModel string) error
}

type Service struct {
	log      *zap.Logger
	repo     carsRepo.Repository
	verifier Verifier
	validate *validate.CustomValidator
}

func NewService(repo carsRepo.Repository, verifier Verifier, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("service"),
		repo:     repo,
		verifier: verifier,
		validate: validate.NewCustomValidator(),
	}
}

func (s *Service) ListCars(ctx context.Context) ([]model.Car, error) {
	stats, err := s.repo.ListCars(ctx)
	if err != nil {
		return nil, err
	}
	cars := make([]model.Car, 0, len(stats))
	for _, st := range stats {
		cars = append(cars, st.Car())
	}
	return cars, nil
}

func (s *Service) GetCar(ctx context.Context, id int64) (model.Car, error) {
	st, err := s.repo.GetCar(ctx, id)
	if err != nil {
		return model.Car{}, err
	}
	return st.Car(), nil
}

// CreateCar validates the request, confirms the pair with the verifier and
// stores it. Pairs differing only in letter case are duplicates.
func (s *Service) CreateCar(ctx context.Context, req model.CreateCarRequest) (model.Car, error) {
	req.Make = strings.TrimSpace(req.Make)
	req.Model = strings.TrimSpace(req.Model)
	if err := s.validate.Validate(req); err != nil {
		return model.Car{}, fmt.Errorf("%w: %w", errs.ErrValidation, err)
	}
	if err := s.verifier.Verify(ctx, req.Make, req.Model); err != nil {
		return model.Car{}, err
	}
	car, err := s.repo.CreateCar(ctx, req.Make, req.Model)
	if err != nil {
		return model.Car{}, err
	}
	metrics.CarsCreated.Inc()
	s.log.Info("car created", zap.Int64("id", car.ID), zap.String("make", car.Make), zap.String("model", car.Model))
	return car, nil
}

// AverageRating is nil when the car has no votes yet.
func (s *Service) AverageRating(ctx context.Context, carID int64) (*float64, error) {
	st, err := s.repo.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	return model.AvgRate(st.RateSum, st.VotesCnt), nil
}

func (s *Service) VoteCount(ctx context.Context, carID int64) (int, error) {
	st, err := s.repo.GetCar(ctx, carID)
	if err != nil {
		return 0, err
	}
	return st.VotesCnt, nil
}

func (s *Service) Rate(ctx context.Context, req model.RateRequest) (model.Rating, error) {
	if err := s.validate.Validate(req); err != nil {
		kind := errs.ErrValidation
		if req.Rate < 1 || req.Rate > 5 {
			kind = errs.ErrInvalidRating
		}
		return model.Rating{}, fmt.Errorf("%w: %w", kind, err)
	}
	rating, err := s.repo.CreateRating(ctx, req.CarID, req.Rate)
	if err != nil {
		return model.Rating{}, err
	}
	metrics.RatingsCreated.Inc()
	return rating, nil
}

// Popular ranks all cars by vote count. A nil limit returns every car.
func (s *Service) Popular(ctx context.Context, limit *int) ([]model.Popular, error) {
	stats, err := s.repo.ListCars(ctx)
	if err != nil {
		return nil, err
	}
	cars := make([]model.Popular, 0, len(stats))
	for _, st := range stats {
		cars = append(cars, st.Popular())
	}
	return Rank(cars, limit), nil
}
