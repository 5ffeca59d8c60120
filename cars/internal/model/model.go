package model

import (
	"math"
)

type Car struct {
	ID      int64    `json:"id" db:"id"`
	Make    string   `json:"make" db:"make"`
	Model   string   `json:"model" db:"model"`
	AvgRate *float64 `json:"avg_rate"`
}

// CarStats is a car row joined with its rating aggregates.
type CarStats struct {
	ID       int64  `db:"id"`
	Make     string `db:"make"`
	Model    string `db:"model"`
	VotesCnt int    `db:"votes_cnt"`
	RateSum  int    `db:"rate_sum"`
}

func (s CarStats) Car() Car {
	return Car{
		ID:      s.ID,
		Make:    s.Make,
		Model:   s.Model,
		AvgRate: AvgRate(s.RateSum, s.VotesCnt),
	}
}

func (s CarStats) Popular() Popular {
	return Popular{
		Make:     s.Make,
		Model:    s.Model,
		VotesCnt: s.VotesCnt,
	}
}

// AvgRate is sum/count rounded half to even at two decimals, nil when there
// are no votes.
func AvgRate(sum, count int) *float64 {
	if count == 0 {
		return nil
	}
	avg := math.RoundToEven(float64(sum)/float64(count)*100) / 100
	return &avg
}

type CreateCarRequest struct {
	Make  string `json:"make" validate:"notblank,max=20"`
	Model string `json:"model" validate:"notblank,max=20"`
}

type Rating struct {
	ID    int64 `json:"-" db:"id"`
	CarID int64 `json:"car_id" db:"car_id"`
	Rate  int   `json:"rate" db:"rate"`
}

type RateRequest struct {
	CarID int64 `json:"car_id" validate:"required"`
	Rate  int   `json:"rate" validate:"gte=1,lte=5"`
}

type Popular struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	VotesCnt int    `json:"votes_cnt"`
}
