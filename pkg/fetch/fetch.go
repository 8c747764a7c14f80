// Package fetch downloads remote assets into the local source tree.
package fetch

import (
	"context"
	"io"
	"net/http"
	"path/filepath"

	"github.com/hashbust/hashbust/pkg/errors"
	"github.com/hashbust/hashbust/pkg/logging"
	"github.com/hashbust/hashbust/pkg/types"
)

// Fetcher performs single blocking HTTP GETs and saves the response
// bytes unchanged. There is no retry or backoff; a failed fetch is a
// failed run.
type Fetcher struct {
	fs     types.FS
	client *http.Client
}

// New creates a Fetcher using http.DefaultClient
func New(filesystem types.FS) *Fetcher {
	return NewWithClient(filesystem, http.DefaultClient)
}

// NewWithClient creates a Fetcher with a caller-supplied HTTP client
func NewWithClient(filesystem types.FS, client *http.Client) *Fetcher {
	return &Fetcher{fs: filesystem, client: client}
}

// Fetch GETs url and writes the response body, byte for byte, to
// baseDir/destRelPath, creating missing directories. A non-2xx status
// is a fatal error carrying the URL, status code, and response body.
func (f *Fetcher) Fetch(ctx context.Context, url, destRelPath, baseDir string) error {
	logger := logging.GetLogger("fetch")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFetch, "invalid fetch URL %s", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFetch, "fetch of %s failed", url)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFetch, "failed to read response from %s", url)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Newf(errors.ErrFetch, "fetch of %s returned status %d", url, resp.StatusCode).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode).
			WithDetail("body", string(body))
	}

	destPath := filepath.Join(baseDir, filepath.FromSlash(destRelPath))
	if err := f.fs.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create directory for %s", destPath)
	}
	if err := f.fs.WriteFile(destPath, body, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write fetched asset %s", destPath)
	}

	logger.Debug().
		Str("url", url).
		Str("dest", destPath).
		Int("bytes", len(body)).
		Msg("fetched remote asset")

	return nil
}
