package service

import (
	"testing"

	"github.com/Astemirdum/car-rating-service/cars/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Parallel()
	cars := []model.Popular{
		{Make: "A", VotesCnt: 1},
		{Make: "B", VotesCnt: 3},
		{Make: "C", VotesCnt: 1},
		{Make: "D", VotesCnt: 3},
		{Make: "E", VotesCnt: 0},
		{Make: "F", VotesCnt: 2},
	}
	intp := func(i int) *int { return &i }
	makes := func(ps []model.Popular) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Make)
		}
		return out
	}

	tests := []struct {
		name  string
		limit *int
		want  []string
	}{
		{name: "no limit, ties keep input order", limit: nil, want: []string{"B", "D", "F", "A", "C", "E"}},
		{name: "limit 5", limit: intp(5), want: []string{"B", "D", "F", "A", "C"}},
		{name: "limit larger than len", limit: intp(10), want: []string{"B", "D", "F", "A", "C", "E"}},
		{name: "limit 0", limit: intp(0), want: []string{}},
		{name: "negative limit", limit: intp(-1), want: []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, makes(Rank(cars, tt.limit)))
		})
	}
	require.Equal(t, "A", cars[0].Make, "input is not reordered")
}

func TestRank_Empty(t *testing.T) {
	require.Empty(t, Rank(nil, nil))
}
