// Package assets turns asset URIs into local files and loads them into the
// scene graph. Fetching runs in the background; decoding and attaching happen on
// the render goroutine when the loader is polled.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const defaultUserAgent = "campus-viewer/1.0"

// DefaultBaseDirs are tried in order for relative asset paths so models are found whether
// the viewer runs from the repo root or from cmd/viewer.
var DefaultBaseDirs = []string{
	"assets",
	"../../assets",
}

// Fetcher resolves asset URIs. Local paths are looked up as given and then under
// BaseDirs; http and https URLs are downloaded once into CacheDir.
type Fetcher struct {
	Client   *http.Client
	CacheDir string
	BaseDirs []string
}

// NewFetcher returns a Fetcher using DefaultBaseDirs and a 60s HTTP timeout.
func NewFetcher(cacheDir string) *Fetcher {
	return &Fetcher{
		Client:   &http.Client{Timeout: 60 * time.Second},
		CacheDir: cacheDir,
		BaseDirs: DefaultBaseDirs,
	}
}

// Fetch returns the path of a local file holding the asset at uri.
func (f *Fetcher) Fetch(ctx context.Context, uri string) (string, error) {
	u, err := url.Parse(uri)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return f.download(ctx, u)
	}
	return f.resolveLocal(uri)
}

func (f *Fetcher) resolveLocal(p string) (string, error) {
	candidates := []string{filepath.Clean(p)}
	if !filepath.IsAbs(p) {
		for _, base := range f.BaseDirs {
			candidates = append(candidates, filepath.Join(base, p))
		}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("asset %q: %w", p, os.ErrNotExist)
}

// download saves u under CacheDir. A file already in the cache is reused.
func (f *Fetcher) download(ctx context.Context, u *url.URL) (string, error) {
	if f.CacheDir == "" {
		return "", errors.New("download: no cache directory configured")
	}
	savedPath := filepath.Join(f.CacheDir, cacheName(u))
	if info, err := os.Stat(savedPath); err == nil && info.Size() > 0 {
		return savedPath, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: HTTP %d", resp.StatusCode)
	}

	if err := os.MkdirAll(f.CacheDir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	tmp, err := os.CreateTemp(f.CacheDir, ".partial-*")
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	if err := os.Rename(tmp.Name(), savedPath); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download: %w", err)
	}
	return savedPath, nil
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// cacheName derives a file name from the URL host and path, keeping the extension
// because the model decoder picks its format from it.
func cacheName(u *url.URL) string {
	ext := strings.ToLower(filepath.Ext(u.Path))
	base := strings.TrimSuffix(u.Host+u.Path, filepath.Ext(u.Path))
	name := strings.Trim(safeNameRe.ReplaceAllString(base, "_"), "_.")
	if name == "" {
		name = "download"
	}
	if len(name) > 96 {
		name = name[len(name)-96:]
	}
	if ext == "" {
		ext = ".bin"
	}
	return name + ext
}
