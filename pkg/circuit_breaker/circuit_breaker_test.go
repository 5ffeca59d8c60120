package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newCircuitBreaker(Config{
		RecordLength:     10,
		Timeout:          2 * time.Second,
		Percentile:       0.3,
		RecoveryRequests: 2,
	}, func() time.Time { return now })

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(fail), errService)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State(), "3 of 10 failures reach the 30 percent threshold")

	calls := 0
	err := cb.Call(func() error { calls++; return nil })
	require.ErrorIs(t, err, ErrOpenCB)
	require.Zero(t, calls, "open breaker short-circuits")

	now = now.Add(3 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())

	for i := 0; i < 3; i++ {
		_ = cb.Call(fail)
	}
	require.Equal(t, Open, cb.State())
	now = now.Add(3 * time.Second)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State(), "failure while half-open re-opens")

	cb.Reset()
	require.Equal(t, Closed, cb.State())
}
