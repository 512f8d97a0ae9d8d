package dolar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/alquilerapp/rent-service/internal/config"
	"github.com/alquilerapp/rent-service/internal/models"
	"github.com/sirupsen/logrus"
)

// EvolutionClient fetches the full blue-dollar history from the bluelytics
// evolution endpoint. The payload mixes official and blue quotes; only the
// blue records are retained.
type EvolutionClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewEvolutionClient initializes a bluelytics history client.
func NewEvolutionClient(cfg *config.Config, log *logrus.Logger) *EvolutionClient {
	return &EvolutionClient{
		url:    cfg.FxEvolutionURL,
		client: newHTTPClient(),
		log:    log,
	}
}

// Name identifies the provider in logs.
func (c *EvolutionClient) Name() string { return "bluelytics" }

// FetchSeries downloads the full history and keys it by day.
func (c *EvolutionClient) FetchSeries(ctx context.Context) (models.FxSeries, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", c.Name(), resp.StatusCode)
	}

	var records []struct {
		Date      string  `json:"date"`
		Source    string  `json:"source"`
		ValueSell float64 `json:"value_sell"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", c.Name(), err)
	}

	series := make(models.FxSeries)
	for _, rec := range records {
		if !strings.EqualFold(rec.Source, "blue") || rec.ValueSell <= 0 {
			continue
		}
		day, err := models.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("bad %s record: %w", c.Name(), err)
		}
		series[day.Key()] = rec.ValueSell
	}

	c.log.Debugf("Fetched %s series with %d days", c.Name(), len(series))
	return series, nil
}

// HistoryClient fetches the full blue-dollar history from argentinadatos.
// It serves as the fallback source for the same series as EvolutionClient.
type HistoryClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewHistoryClient initializes an argentinadatos history client.
func NewHistoryClient(cfg *config.Config, log *logrus.Logger) *HistoryClient {
	return &HistoryClient{
		url:    cfg.FxHistoryURL,
		client: newHTTPClient(),
		log:    log,
	}
}

// Name identifies the provider in logs.
func (c *HistoryClient) Name() string { return "argentinadatos" }

// FetchSeries downloads the full history and keys it by day.
func (c *HistoryClient) FetchSeries(ctx context.Context) (models.FxSeries, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", c.Name(), resp.StatusCode)
	}

	var records []struct {
		Casa  string  `json:"casa"`
		Venta float64 `json:"venta"`
		Fecha string  `json:"fecha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", c.Name(), err)
	}

	series := make(models.FxSeries)
	for _, rec := range records {
		if !strings.EqualFold(rec.Casa, "blue") || rec.Venta <= 0 {
			continue
		}
		day, err := models.ParseDate(rec.Fecha)
		if err != nil {
			return nil, fmt.Errorf("bad %s record: %w", c.Name(), err)
		}
		series[day.Key()] = rec.Venta
	}

	c.log.Debugf("Fetched %s series with %d days", c.Name(), len(series))
	return series, nil
}
