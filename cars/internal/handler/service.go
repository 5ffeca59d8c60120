package handler

import (
	"context"

	"github.com/Astemirdum/car-rating-service/cars/internal/model"
	"github.com/Astemirdum/car-rating-service/cars/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CarService interface {
	ListCars(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id int64) (model.Car, error)
	CreateCar(ctx context.Context, req model.CreateCarRequest) (model.Car, error)
	Rate(ctx context.Context, req model.RateRequest) (model.Rating, error)
	Popular(ctx context.Context, limit *int) ([]model.Popular, error)
}

var _ CarService = (*service.Service)(nil)
