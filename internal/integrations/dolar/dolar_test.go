package dolar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alquilerapp/rent-service/internal/config"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestEvolutionClientKeepsOnlyBlue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"date": "2023-04-03", "source": "Oficial", "value_sell": 220.0},
			{"date": "2023-04-03", "source": "Blue", "value_sell": 392.0},
			{"date": "2023-04-04", "source": "Blue", "value_sell": 394.0}
		]`))
	}))
	defer srv.Close()

	c := NewEvolutionClient(&config.Config{FxEvolutionURL: srv.URL}, testLogger())
	series, err := c.FetchSeries(context.Background())
	if err != nil {
		t.Fatalf("FetchSeries failed: %v", err)
	}

	if len(series) != 2 {
		t.Errorf("got %d days, want 2 (official records dropped)", len(series))
	}
	if v := series["2023-04-03"]; v != 392.0 {
		t.Errorf("2023-04-03 = %v, want the blue quote 392", v)
	}
}

func TestHistoryClientKeepsOnlyBlue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"casa": "oficial", "venta": 220.0, "fecha": "2023-04-03"},
			{"casa": "blue", "venta": 391.0, "fecha": "2023-04-03"}
		]`))
	}))
	defer srv.Close()

	c := NewHistoryClient(&config.Config{FxHistoryURL: srv.URL}, testLogger())
	series, err := c.FetchSeries(context.Background())
	if err != nil {
		t.Fatalf("FetchSeries failed: %v", err)
	}

	if len(series) != 1 || series["2023-04-03"] != 391.0 {
		t.Errorf("series = %v, want only 2023-04-03: 391", series)
	}
}

func TestDateClient(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.URL.Path == "/2023/04/02" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"compra": 388.0, "venta": 393.0, "fecha": "2023-04-03"}`))
	}))
	defer srv.Close()

	c := NewDateClient(&config.Config{FxDateURL: srv.URL}, testLogger())

	day := time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC)
	v, err := c.FetchRate(context.Background(), day)
	if err != nil {
		t.Fatalf("FetchRate failed: %v", err)
	}
	if v != 393.0 {
		t.Errorf("FetchRate = %v, want 393", v)
	}
	if gotPath != "/2023/04/03" {
		t.Errorf("requested path %q, want /2023/04/03", gotPath)
	}

	_, err = c.FetchRate(context.Background(), day.AddDate(0, 0, -1))
	if !errors.Is(err, ErrNoQuote) {
		t.Errorf("expected ErrNoQuote for a 404 day, got %v", err)
	}
}

func TestCurrentClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"compra": 390.0, "venta": 395.0, "casa": "blue"}`))
	}))
	defer srv.Close()

	c := NewCurrentClient(&config.Config{FxCurrentURL: srv.URL}, testLogger())
	v, err := c.FetchCurrent(context.Background())
	if err != nil {
		t.Fatalf("FetchCurrent failed: %v", err)
	}
	if v != 395.0 {
		t.Errorf("FetchCurrent = %v, want 395", v)
	}
}
