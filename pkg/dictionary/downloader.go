package dictionary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/yaklabco/gospell/internal/logging"
	"github.com/yaklabco/gospell/pkg/fsutil"
)

const (
	downloadTimeout = 30 * time.Second
	maxWordlistSize = 32 << 20 // 32 MiB
)

// downloader fetches remote wordlists and caches them on disk. Cache entries
// are keyed by a hash of the URL so a changed source address never serves a
// stale file.
type downloader struct {
	cacheDir string
	client   *http.Client
}

func newDownloader(cacheDir string) *downloader {
	return &downloader{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: downloadTimeout},
	}
}

// cachePath maps a URL to its on-disk cache location.
func (d *downloader) cachePath(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(d.cacheDir, hex.EncodeToString(sum[:8])+".txt")
}

// Fetch returns the local path of the wordlist at url, downloading it on
// first use. Subsequent calls serve the cached copy without touching the
// network.
func (d *downloader) Fetch(ctx context.Context, url string) (string, error) {
	path := d.cachePath(url)
	if _, err := os.Stat(path); err == nil {
		logging.FromContext(ctx).Debug("dictionary cache hit", logging.FieldURL, url)
		return path, nil
	}

	logging.FromContext(ctx).Debug("downloading dictionary", logging.FieldURL, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxWordlistSize))
	if err != nil {
		return "", fmt.Errorf("read wordlist body from %s: %w", url, err)
	}

	if err := os.MkdirAll(d.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}
	if err := fsutil.WriteAtomic(ctx, path, data, fsutil.DefaultFileMode); err != nil {
		return "", fmt.Errorf("cache wordlist: %w", err)
	}

	return path, nil
}
