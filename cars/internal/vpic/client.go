// Package vpic checks make/model pairs against the NHTSA vPIC API.
package vpic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Astemirdum/car-rating-service/cars/internal/errs"
	"github.com/Astemirdum/car-rating-service/cars/internal/metrics"
	"github.com/Astemirdum/car-rating-service/pkg/cache"
	"github.com/Astemirdum/car-rating-service/pkg/circuit_breaker"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api"

type Config struct {
	BaseURL  string        `envconfig:"VPIC_BASE_URL" default:"https://vpic.nhtsa.dot.gov/api"`
	Timeout  time.Duration `envconfig:"VPIC_TIMEOUT" default:"10s"`
	CacheTTL time.Duration `envconfig:"VPIC_CACHE_TTL" default:"24h"`
	Breaker  circuit_breaker.Config
}

type Client struct {
	log    *zap.Logger
	client *http.Client
	cache  cache.Cache
	cb     circuit_breaker.CircuitBreaker
	cfg    Config
}

func NewClient(cfg Config, c cache.Cache, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return &Client{
		log:    log.Named("vpic"),
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  c,
		cb:     circuit_breaker.New(cfg.Breaker),
		cfg:    cfg,
	}
}

type modelsResponse struct {
	Count   int    `json:"Count"`
	Message string `json:"Message"`
	Results []struct {
		MakeID    int    `json:"Make_ID"`
		MakeName  string `json:"Make_Name"`
		ModelID   int    `json:"Model_ID"`
		ModelName string `json:"Model_Name"`
	} `json:"Results"`
}

// Verify reports whether carModel is a known model of carMake.
// Models are compared case-insensitively.
func (c *Client) Verify(ctx context.Context, carMake, carModel string) error {
	models, err := c.Models(ctx, carMake)
	if err != nil {
		return err
	}
	if len(models) == 0 {
		return errs.ErrMakeNotFound
	}
	for _, m := range models {
		if strings.EqualFold(m, carModel) {
			return nil
		}
	}
	return errs.ErrModelNotFound
}

// Models returns the model names vPIC knows for carMake. An empty list
// means the make is unknown. Both outcomes are cached for CacheTTL.
func (c *Client) Models(ctx context.Context, carMake string) ([]string, error) {
	key := cacheKey(carMake)
	if models, ok := c.cached(ctx, key); ok {
		metrics.VpicLookups.WithLabelValues("hit").Inc()
		return models, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		models   []string
		fetchErr error
	)
	err := c.cb.Call(func() error {
		models, fetchErr = c.fetch(ctx, carMake)
		if fetchErr != nil && ctx.Err() != nil {
			// caller gave up, upstream health unknown
			return nil
		}
		return fetchErr
	})
	if err == nil && fetchErr != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		metrics.VpicLookups.WithLabelValues("error").Inc()
		c.log.Warn("vpic lookup failed", zap.String("make", carMake), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errs.ErrUpstreamUnreachable, err)
	}
	metrics.VpicLookups.WithLabelValues("miss").Inc()

	if data, err := json.Marshal(models); err == nil {
		if err := c.cache.Set(ctx, key, data, c.cfg.CacheTTL); err != nil {
			c.log.Warn("cache set", zap.String("key", key), zap.Error(err))
		}
	}
	return models, nil
}

func (c *Client) cached(ctx context.Context, key string) ([]string, bool) {
	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache get", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var models []string
	if err := json.Unmarshal(data, &models); err != nil {
		c.log.Warn("cache decode", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return models, true
}

func (c *Client) fetch(ctx context.Context, carMake string) ([]string, error) {
	u := fmt.Sprintf("%s/vehicles/GetModelsForMake/%s?format=json",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(carMake))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	models := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		models = append(models, r.ModelName)
	}
	c.log.Debug("vpic models", zap.String("make", carMake), zap.Int("count", len(models)))
	return models, nil
}

func cacheKey(carMake string) string {
	return "vpic:models:" + strings.ToLower(strings.TrimSpace(carMake))
}
