package scrape

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119 Safari/537.36 (+stats-trivia)"

// Fetcher is the shared HTTP client for every upstream source: one rate
// governor across the whole pipeline so courtesy pacing holds regardless of
// which stage is fetching, and a circuit breaker so a flapping upstream stops
// a run early instead of burning through hundreds of doomed probes.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	logger  *logrus.Logger
}

// NewFetcher creates a fetcher. rps is the sustained requests-per-second cap
// against upstream sites; breakerThreshold is consecutive failures before the
// circuit opens.
func NewFetcher(timeout time.Duration, rps float64, breakerThreshold int, logger *logrus.Logger) *Fetcher {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "upstream",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(breakerThreshold)
		},
	})

	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		breaker: breaker,
		logger:  logger,
	}
}

// Get fetches a URL with rate limiting and exponential backoff.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	body, err := f.breaker.Execute(func() (interface{}, error) {
		return f.getWithRetry(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

func (f *Fetcher) getWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := f.doGet(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		waitTime := time.Duration(math.Pow(2, float64(attempt))) * time.Second
		f.logger.Warnf("Request for %s failed (attempt %d), waiting %v: %v", url, attempt+1, waitTime, err)
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("request failed after retries: %w", lastErr)
}

func (f *Fetcher) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// GetDocument fetches a URL and parses it as HTML.
func (f *Fetcher) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := f.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document from %s: %w", url, err)
	}
	return doc, nil
}

// Head probes a URL for existence without downloading the body. A non-2xx
// status is a negative answer, not an error.
func (f *Fetcher) Head(ctx context.Context, url string) (bool, error) {
	exists, err := f.breaker.Execute(func() (interface{}, error) {
		if err := f.limiter.Wait(ctx); err != nil {
			return false, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return false, err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return false, err
		}
		resp.Body.Close()

		return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
	})
	if err != nil {
		return false, err
	}
	return exists.(bool), nil
}
