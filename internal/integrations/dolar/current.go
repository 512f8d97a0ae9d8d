package dolar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alquilerapp/rent-service/internal/config"
	"github.com/sirupsen/logrus"
)

// CurrentClient queries the dolarapi endpoint that only knows "now". It is
// the last-resort tier: the requested date is ignored by the upstream.
type CurrentClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewCurrentClient initializes a current-quote client.
func NewCurrentClient(cfg *config.Config, log *logrus.Logger) *CurrentClient {
	return &CurrentClient{
		url:    cfg.FxCurrentURL,
		client: newHTTPClient(),
		log:    log,
	}
}

// FetchCurrent returns today's blue sell quote.
func (c *CurrentClient) FetchCurrent(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("current-quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("current-quote provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		Venta float64 `json:"venta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode current-quote payload: %w", err)
	}
	if payload.Venta <= 0 {
		return 0, ErrNoQuote
	}

	return payload.Venta, nil
}
