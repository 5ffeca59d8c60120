package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/car-rating-service/cars/internal/errs"
	"github.com/Astemirdum/car-rating-service/cars/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListCars(ctx context.Context) ([]model.CarStats, error)
	GetCar(ctx context.Context, id int64) (model.CarStats, error)
	CreateCar(ctx context.Context, carMake, carModel string) (model.Car, error)
	CreateRating(ctx context.Context, carID int64, rate int) (model.Rating, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	carTableName     = `car`
	carRateTableName = `car_rate`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func carStatsQuery() sq.SelectBuilder {
	return qb.Select(
		"c.id",
		"c.make",
		"c.model",
		"count(r.id) as votes_cnt",
		"coalesce(sum(r.rate), 0) as rate_sum",
	).
		From(carTableName + " c").
		LeftJoin(fmt.Sprintf("%s r on r.car_id = c.id", carRateTableName)).
		GroupBy("c.id").
		OrderBy("c.id")
}

func (r *repository) ListCars(ctx context.Context) ([]model.CarStats, error) {
	query, args, err := carStatsQuery().ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CarStats])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return cars, nil
}

func (r *repository) GetCar(ctx context.Context, id int64) (model.CarStats, error) {
	query, args, err := carStatsQuery().
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return model.CarStats{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.CarStats{}, err
	}
	defer rows.Close()

	car, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CarStats])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CarStats{}, errs.ErrCarNotFound
		}
		return model.CarStats{}, err
	}
	return car, nil
}

func (r *repository) CreateCar(ctx context.Context, carMake, carModel string) (model.Car, error) {
	query, args, err := qb.Insert(carTableName).
		Columns("make", "model").
		Values(carMake, carModel).
		Suffix("returning id, make, model").
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var car model.Car
	if err := r.db.QueryRow(ctx, query, args...).Scan(&car.ID, &car.Make, &car.Model); err != nil {
		if pgErrCode(err) == pgerrcode.UniqueViolation {
			return model.Car{}, errs.ErrDuplicateCar
		}
		r.log.Error("CreateCar", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Car{}, errors.Wrap(err, "insert car")
	}
	return car, nil
}

func (r *repository) CreateRating(ctx context.Context, carID int64, rate int) (model.Rating, error) {
	query, args, err := qb.Insert(carRateTableName).
		Columns("car_id", "rate").
		Values(carID, rate).
		Suffix("returning id, car_id, rate").
		ToSql()
	if err != nil {
		return model.Rating{}, err
	}

	var rating model.Rating
	if err := r.db.QueryRow(ctx, query, args...).Scan(&rating.ID, &rating.CarID, &rating.Rate); err != nil {
		switch pgErrCode(err) {
		case pgerrcode.ForeignKeyViolation:
			return model.Rating{}, errs.ErrCarNotFound
		case pgerrcode.CheckViolation:
			return model.Rating{}, errs.ErrInvalidRating
		}
		r.log.Error("CreateRating", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Rating{}, errors.Wrap(err, "insert rating")
	}
	return rating, nil
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
