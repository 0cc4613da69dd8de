// Package cache implements the versioned offline asset cache: a fixed
// manifest is pre-fetched at install time, stale versions are pruned on
// activation, and fetches are network-first with a cached fallback.
package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultFetchTimeout = 15 * time.Second

// Config configures a Worker.
type Config struct {
	// Version names the current cache; bump it on redeploy to
	// invalidate stale entries.
	Version string
	// Manifest is the fixed list of asset URLs guaranteed available
	// offline after Install.
	Manifest []string
	// HTTPClient defaults to a client with a 15s timeout.
	HTTPClient *http.Client
}

// Result is a fetched asset.
type Result struct {
	Body        []byte
	ContentType string
	StatusCode  int
	FromCache   bool
}

// Worker is the offline cache state machine. One Worker serves one
// current version at a time; Install then Activate moves the deployment
// from version V to V'.
type Worker struct {
	version  string
	manifest []string
	store    Store
	client   *http.Client

	// onWrite, when set, is called after each detached cache write
	// completes. Tests use it to synchronize with fire-and-forget
	// writes.
	onWrite func(url string)
}

// NewWorker creates a Worker over the given store.
func NewWorker(cfg Config, store Store) (*Worker, error) {
	if cfg.Version == "" {
		return nil, fmt.Errorf("cache version cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}

	return &Worker{
		version:  cfg.Version,
		manifest: cfg.Manifest,
		store:    store,
		client:   client,
	}, nil
}

// Version returns the current cache version name.
func (w *Worker) Version() string {
	return w.version
}

// Install pre-fetches the manifest into the current version's cache.
// Readiness is immediate: a new version replaces the old one without
// waiting for it to drain. Any manifest fetch failure fails the install.
func (w *Worker) Install(ctx context.Context) error {
	for _, url := range w.manifest {
		entry, status, err := w.fetchLive(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to pre-cache %s: %w", url, err)
		}
		if status >= 400 {
			return fmt.Errorf("failed to pre-cache %s: status %d", url, status)
		}

		if err := w.store.Put(w.version, url, entry); err != nil {
			return err
		}
	}

	log.Info().Str("version", w.version).Int("assets", len(w.manifest)).Msg("Cache installed")
	return nil
}

// Activate deletes every cache version except the current one, so cache
// growth stays bounded across deployments.
func (w *Worker) Activate(ctx context.Context) error {
	versions, err := w.store.Versions()
	if err != nil {
		return err
	}

	for _, v := range versions {
		if v == w.version {
			continue
		}
		if err := w.store.DeleteVersion(v); err != nil {
			return err
		}
		log.Info().Str("version", v).Msg("Stale cache deleted")
	}

	return nil
}

// Fetch serves url network-first. A live response is returned to the
// caller immediately while a copy is written to the cache on a detached
// goroutine; tests must not assume the write lands before Fetch returns.
// Error-status responses pass through live but are never cached, so the
// fallback only ever replays a previously successful response. On network
// failure the cached entry is served if one exists, otherwise the network
// error surfaces. First failure is final; there is no retry.
func (w *Worker) Fetch(ctx context.Context, url string) (*Result, error) {
	entry, status, err := w.fetchLive(ctx, url)
	if err == nil {
		if status < http.StatusBadRequest {
			w.storeDetached(url, entry)
		}
		return &Result{
			Body:        entry.Body,
			ContentType: entry.ContentType,
			StatusCode:  status,
		}, nil
	}

	cached, found, cacheErr := w.store.Get(w.version, url)
	if cacheErr != nil {
		log.Error().Err(cacheErr).Str("url", url).Msg("Cache lookup failed")
	}
	if found {
		log.Debug().Str("url", url).Msg("Serving cached fallback")
		return &Result{
			Body:        cached.Body,
			ContentType: cached.ContentType,
			StatusCode:  http.StatusOK,
			FromCache:   true,
		}, nil
	}

	return nil, fmt.Errorf("fetch %s: %w", url, err)
}

func (w *Worker) fetchLive(ctx context.Context, url string) (Entry, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Entry{}, 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return Entry{}, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Entry{}, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	return Entry{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, resp.StatusCode, nil
}

// storeDetached writes a cache entry without blocking the caller. The
// entry value is already a private copy of the body.
func (w *Worker) storeDetached(url string, entry Entry) {
	go func() {
		if err := w.store.Put(w.version, url, entry); err != nil {
			log.Error().Err(err).Str("url", url).Msg("Detached cache write failed")
		}
		if w.onWrite != nil {
			w.onWrite(url)
		}
	}()
}
