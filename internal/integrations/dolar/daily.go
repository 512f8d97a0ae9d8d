package dolar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alquilerapp/rent-service/internal/config"
	"github.com/sirupsen/logrus"
)

// DateClient queries the argentinadatos per-date endpoint, one network call
// per requested day.
type DateClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewDateClient initializes a per-date quote client.
func NewDateClient(cfg *config.Config, log *logrus.Logger) *DateClient {
	return &DateClient{
		baseURL: strings.TrimRight(cfg.FxDateURL, "/"),
		client:  newHTTPClient(),
		log:     log,
	}
}

// FetchRate returns the blue sell quote for the given day.
// Returns ErrNoQuote when the provider has no record for that day.
func (c *DateClient) FetchRate(ctx context.Context, day time.Time) (float64, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, day.Format("2006/01/02"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("per-date request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, ErrNoQuote
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("per-date provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		Venta float64 `json:"venta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode per-date payload: %w", err)
	}
	if payload.Venta <= 0 {
		return 0, ErrNoQuote
	}

	c.log.Debugf("Per-date quote for %s: %.2f", day.Format("2006-01-02"), payload.Venta)
	return payload.Venta, nil
}
