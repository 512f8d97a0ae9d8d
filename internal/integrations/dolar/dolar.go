// Package dolar integrates the informal ("blue") dollar quote providers.
// Three kinds of provider exist: full-history series, per-date lookups and
// current-value-only endpoints. They are independent public APIs with
// unrelated payload shapes and very different uptime records, which is why
// the resolver layer chains them instead of trusting any single one.
package dolar

import (
	"errors"
	"net/http"
	"time"
)

// ErrNoQuote is returned when a provider answers but has no quote for the
// requested day (markets close on weekends and holidays).
var ErrNoQuote = errors.New("no quote for requested date")

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
	}
}
