package vpic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/car-rating-service/cars/internal/errs"
	"github.com/Astemirdum/car-rating-service/pkg/cache"
	"github.com/Astemirdum/car-rating-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVpic struct {
	srv    *httptest.Server
	calls  atomic.Int32
	status int
	delay  time.Duration
	// models by make path segment
	models map[string][]string
}

func newFakeVpic(t *testing.T, status int, delay time.Duration) *fakeVpic {
	t.Helper()
	f := &fakeVpic{
		status: status,
		delay:  delay,
		models: map[string][]string{
			"Jeep": {"Cherokee", "Wrangler"},
			"jeep": {"Cherokee", "Wrangler"},
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/vehicles/GetModelsForMake/", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		if f.delay > 0 {
			time.Sleep(f.delay)
		}
		if r.URL.Query().Get("format") != "json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if f.status != http.StatusOK {
			w.WriteHeader(f.status)
			return
		}
		carMake := r.URL.Path[len("/vehicles/GetModelsForMake/"):]
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Count":0,"Message":"Response returned successfully","Results":[`)
		for i, m := range f.models[carMake] {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"Make_ID":483,"Make_Name":"JEEP","Model_ID":%d,"Model_Name":%q}`, 2000+i, m)
		}
		fmt.Fprint(w, `]}`)
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func newTestClient(baseURL string, c cache.Cache) *Client {
	return NewClient(Config{
		BaseURL:  baseURL,
		Timeout:  200 * time.Millisecond,
		CacheTTL: 24 * time.Hour,
	}, c, zap.NewNop())
}

func TestClient_Verify(t *testing.T) {
	t.Parallel()
	f := newFakeVpic(t, http.StatusOK, 0)

	tests := []struct {
		name    string
		make    string
		model   string
		wantErr error
	}{
		{name: "ok", make: "Jeep", model: "Cherokee"},
		{name: "model case differs", make: "Jeep", model: "cherOKEE"},
		{name: "make not found", make: "FakeMake", model: "Cherokee", wantErr: errs.ErrMakeNotFound},
		{name: "model not found", make: "Jeep", model: "FakeModel", wantErr: errs.ErrModelNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(f.srv.URL, cache.NewMemory())
			err := c.Verify(context.Background(), tt.make, tt.model)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Verify_Cached(t *testing.T) {
	t.Parallel()
	f := newFakeVpic(t, http.StatusOK, 0)
	mem := cache.NewMemory()
	c := newTestClient(f.srv.URL, mem)
	ctx := context.Background()

	require.NoError(t, c.Verify(ctx, "Jeep", "Cherokee"))
	require.NoError(t, c.Verify(ctx, "jeep", "wrangler"))
	require.ErrorIs(t, c.Verify(ctx, "Jeep", "FakeModel"), errs.ErrModelNotFound)
	require.Equal(t, int32(1), f.calls.Load(), "make is looked up once")

	require.ErrorIs(t, c.Verify(ctx, "FakeMake", "X"), errs.ErrMakeNotFound)
	require.ErrorIs(t, c.Verify(ctx, "FakeMake", "Y"), errs.ErrMakeNotFound)
	require.Equal(t, int32(2), f.calls.Load(), "empty results are cached too")

	require.NoError(t, mem.Clear(ctx))
	require.NoError(t, c.Verify(ctx, "Jeep", "Cherokee"))
	require.Equal(t, int32(3), f.calls.Load())
}

func TestClient_Verify_Unreachable(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := newTestClient(srv.URL, cache.NewMemory())
		require.ErrorIs(t, c.Verify(context.Background(), "Jeep", "Cherokee"), errs.ErrUpstreamUnreachable)
	})

	t.Run("server error is not cached", func(t *testing.T) {
		t.Parallel()
		f := newFakeVpic(t, http.StatusInternalServerError, 0)
		mem := cache.NewMemory()
		c := newTestClient(f.srv.URL, mem)
		require.ErrorIs(t, c.Verify(context.Background(), "Jeep", "Cherokee"), errs.ErrUpstreamUnreachable)
		require.Zero(t, mem.Len())
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		f := newFakeVpic(t, http.StatusOK, time.Second)
		c := newTestClient(f.srv.URL, cache.NewMemory())
		require.ErrorIs(t, c.Verify(context.Background(), "Jeep", "Cherokee"), errs.ErrUpstreamUnreachable)
	})
}

func TestClient_Verify_BreakerOpen(t *testing.T) {
	t.Parallel()
	f := newFakeVpic(t, http.StatusBadGateway, 0)
	c := NewClient(Config{
		BaseURL: f.srv.URL,
		Timeout: time.Second,
		Breaker: circuit_breaker.Config{
			RecordLength:     2,
			Timeout:          time.Hour,
			Percentile:       1,
			RecoveryRequests: 1,
		},
	}, cache.NewMemory(), zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.ErrorIs(t, c.Verify(ctx, "Jeep", "Cherokee"), errs.ErrUpstreamUnreachable)
	}
	require.ErrorIs(t, c.Verify(ctx, "Jeep", "Cherokee"), errs.ErrUpstreamUnreachable)
	require.Equal(t, int32(2), f.calls.Load(), "open breaker skips the request")
}

func TestClient_Verify_CallerCancelDoesNotTripBreaker(t *testing.T) {
	t.Parallel()
	f := newFakeVpic(t, http.StatusOK, 200*time.Millisecond)
	c := NewClient(Config{
		BaseURL: f.srv.URL,
		Timeout: time.Second,
		Breaker: circuit_breaker.Config{
			RecordLength:     2,
			Timeout:          time.Hour,
			Percentile:       0.5,
			RecoveryRequests: 1,
		},
	}, cache.NewMemory(), zap.NewNop())

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		err := c.Verify(ctx, "Jeep", "Cherokee")
		cancel()
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.NotErrorIs(t, err, errs.ErrUpstreamUnreachable)
	}
	require.Equal(t, circuit_breaker.Closed, c.cb.State())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	calls := f.calls.Load()
	require.ErrorIs(t, c.Verify(canceled, "Jeep", "Cherokee"), context.Canceled)
	require.Equal(t, calls, f.calls.Load(), "done context skips the request")

	require.NoError(t, c.Verify(context.Background(), "Jeep", "Cherokee"))
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()
	c := NewClient(Config{}, cache.NewMemory(), zap.NewNop())
	require.Equal(t, DefaultBaseURL, c.cfg.BaseURL)
	require.Equal(t, 10*time.Second, c.cfg.Timeout)
	require.Equal(t, 24*time.Hour, c.cfg.CacheTTL)
}

func Test_cacheKey(t *testing.T) {
	require.Equal(t, "vpic:models:jeep", cacheKey(" JEEP "))
}
