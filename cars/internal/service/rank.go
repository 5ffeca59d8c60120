package service

import (
	"sort"

	"github.com/Astemirdum/car-rating-service/cars/internal/model"
)

// Rank sorts cars by vote count, most voted first. Cars with equal votes
// keep their input order, which is the registry order (ascending id).
// limit truncates the result; zero or negative yields an empty slice.
func Rank(cars []model.Popular, limit *int) []model.Popular {
	ranked := make([]model.Popular, len(cars))
	copy(ranked, cars)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].VotesCnt > ranked[j].VotesCnt
	})
	if limit == nil || *limit >= len(ranked) {
		return ranked
	}
	if *limit <= 0 {
		return ranked[:0]
	}
	return ranked[:*limit]
}
