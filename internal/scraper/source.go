package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pfrederiksen/sane-sg23/internal/logger"
)

// PageSource returns the raw text of a page identified by key, located at url
type PageSource interface {
	Fetch(ctx context.Context, key, url string) (string, error)
}

// CachedSource serves pages from a cache directory, downloading each missing page once
type CachedSource struct {
	client    *http.Client
	cacheDir  string
	userAgent string
}

// NewCachedSource creates a CachedSource rooted at cacheDir
func NewCachedSource(cacheDir, userAgent string, timeout time.Duration) *CachedSource {
	if userAgent == "" {
		userAgent = UserAgent
	}
	if timeout <= 0 {
		timeout = Timeout
	}
	return &CachedSource{
		client: &http.Client{
			Timeout: timeout,
		},
		cacheDir:  cacheDir,
		userAgent: userAgent,
	}
}

// Fetch returns the cached copy of key, or downloads url and caches it under key
func (c *CachedSource) Fetch(ctx context.Context, key, url string) (string, error) {
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", fmt.Errorf("%w: invalid cache key %q", ErrFetch, key)
	}
	path := filepath.Join(c.cacheDir, filepath.FromSlash(key))

	data, err := os.ReadFile(path)
	if err == nil {
		logger.IncrCounter("pages.cache_hits")
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: reading cache: %w", ErrFetch, err)
	}

	logger.Info("Downloading page", logger.Fields{
		"key": key,
		"url": url,
	})

	start := time.Now()
	body, err := c.download(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, url, err)
	}
	logger.RecordTiming("pages.download", time.Since(start))
	logger.IncrCounter("pages.downloaded")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("%w: creating cache directory: %w", ErrFetch, err)
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("%w: writing cache: %w", ErrFetch, err)
	}

	return string(body), nil
}

func (c *CachedSource) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}
