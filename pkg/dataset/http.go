package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chartwright/chartwright/pkg/cache"
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

const httpTimeout = 30 * time.Second

// HTTPLoader fetches series from http(s) endpoints that return a JSON array
// of entries (numbers or {label, value} records). Server errors retry with
// backoff; decode failures and client errors do not.
type HTTPLoader struct {
	http  *http.Client
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// NewHTTPLoader creates an HTTP loader. Pass a nil cache to fetch every time.
func NewHTTPLoader(c cache.Cache, keyer cache.Keyer) *HTTPLoader {
	return &HTTPLoader{
		http:  &http.Client{Timeout: httpTimeout},
		cache: c,
		keyer: keyer,
		ttl:   DefaultTTL,
	}
}

// Load fetches and decodes the series at url.
func (l *HTTPLoader) Load(ctx context.Context, url string) (chart.Series, error) {
	return cachedLoad(ctx, l.cache, l.keyer, url, l.ttl, func() (chart.Series, error) {
		var series chart.Series
		err := cache.RetryWithBackoff(ctx, func() error {
			return l.fetch(ctx, url, &series)
		})
		if err != nil {
			return nil, err
		}
		return series, nil
	})
}

func (l *HTTPLoader) fetch(ctx context.Context, url string, series *chart.Series) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLocator, err, "invalid data url %s", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "fetching %s", url))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, url); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(series); err != nil {
		return errors.Wrap(errors.ErrCodeDecode, err, "decoding series from %s", url)
	}
	return nil
}

func checkStatus(code int, url string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "no data at %s", url)
	case code >= 500:
		return cache.Retryable(errors.New(errors.ErrCodeNetwork, "fetching %s: status %d", url, code))
	default:
		return errors.New(errors.ErrCodeNetwork, "fetching %s: status %d", url, code)
	}
}

// encodeSeries and decodeSeries are the cache wire format for fetched series.
func encodeSeries(s chart.Series) ([]byte, error) {
	return json.Marshal(s)
}

func decodeSeries(data []byte) (chart.Series, error) {
	var s chart.Series
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("corrupt cached series: %w", err)
	}
	return s, nil
}
