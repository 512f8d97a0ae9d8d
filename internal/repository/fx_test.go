package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alquilerapp/rent-service/internal/models"
)

type stubFxProvider struct {
	name   string
	series models.FxSeries
	err    error
	calls  int
}

func (p *stubFxProvider) Name() string { return p.name }

func (p *stubFxProvider) FetchSeries(ctx context.Context) (models.FxSeries, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.series, nil
}

func TestFxRepositoryFirstProviderWins(t *testing.T) {
	first := &stubFxProvider{name: "first", series: models.FxSeries{"2023-04-03": 392.0}}
	second := &stubFxProvider{name: "second", series: models.FxSeries{"2023-04-03": 999.0}}
	repo := NewFxRepository(testLogger(), first, second)

	for i := 0; i < 2; i++ {
		series, ok := repo.Series(context.Background())
		if !ok {
			t.Fatal("expected a series")
		}
		if series["2023-04-03"] != 392.0 {
			t.Errorf("got %v, want the first provider's quote", series["2023-04-03"])
		}
	}
	if second.calls != 0 {
		t.Errorf("second provider was queried %d times, want 0", second.calls)
	}
	if first.calls != 1 {
		t.Errorf("first provider was queried %d times, want 1 (memoized)", first.calls)
	}
	if repo.Source() != "first" {
		t.Errorf("Source() = %q, want %q", repo.Source(), "first")
	}
}

func TestFxRepositoryFallsBack(t *testing.T) {
	first := &stubFxProvider{name: "first", err: errors.New("down")}
	second := &stubFxProvider{name: "second", series: models.FxSeries{"2023-04-03": 391.0}}
	repo := NewFxRepository(testLogger(), first, second)

	series, ok := repo.Series(context.Background())
	if !ok || series["2023-04-03"] != 391.0 {
		t.Errorf("got %v, %v; want the second provider's series", series, ok)
	}
	if repo.Source() != "second" {
		t.Errorf("Source() = %q, want %q", repo.Source(), "second")
	}
}

func TestFxRepositoryAllProvidersDown(t *testing.T) {
	first := &stubFxProvider{name: "first", err: errors.New("down")}
	repo := NewFxRepository(testLogger(), first)

	if _, ok := repo.Series(context.Background()); ok {
		t.Error("expected no series when every provider is down")
	}

	// Failure is not cached: a later call tries again.
	repo.Series(context.Background())
	if first.calls != 2 {
		t.Errorf("provider was queried %d times, want 2", first.calls)
	}
}
