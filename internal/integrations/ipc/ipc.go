package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alquilerapp/rent-service/internal/config"
	"github.com/alquilerapp/rent-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Client fetches the national consumer price index (IPC) series from the
// datos.gob.ar series API.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new IPC client.
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.IPCURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// seriesPoint is one [isoDateString, value] pair of the API payload.
// The value may be null for months not yet consolidated.
type seriesPoint struct {
	date  string
	value float64
	ok    bool
}

func (p *seriesPoint) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("series point is not an array: %w", err)
	}
	if len(raw) < 2 {
		return fmt.Errorf("series point has %d elements, want 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.date); err != nil {
		return fmt.Errorf("series point date: %w", err)
	}
	if string(raw[1]) == "null" {
		p.ok = false
		return nil
	}
	if err := json.Unmarshal(raw[1], &p.value); err != nil {
		return fmt.Errorf("series point value for %s: %w", p.date, err)
	}
	p.ok = true
	return nil
}

// FetchSeries downloads and parses the full IPC series. The month key of each
// point is taken from the first 7 characters of its ISO date.
func (c *Client) FetchSeries(ctx context.Context) (models.IndexSeries, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to IPC provider failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("IPC provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data []seriesPoint `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode IPC payload: %w", err)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("IPC payload is missing the data array")
	}

	series := make(models.IndexSeries, len(payload.Data))
	for _, p := range payload.Data {
		if !p.ok || len(p.date) < 7 {
			continue
		}
		month, err := models.ParseMonthKey(p.date[:7])
		if err != nil {
			return nil, fmt.Errorf("bad IPC point: %w", err)
		}
		series[month] = p.value
	}

	c.log.Debugf("Fetched IPC series with %d months", len(series))
	return series, nil
}
