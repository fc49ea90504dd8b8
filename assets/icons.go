package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"strings"

	cfg "github.com/automoto/portfolio/config"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrIconUnavailable is returned when every source for an icon failed.
var ErrIconUnavailable = errors.New("icon unavailable")

const maxIconBytes = 1 << 20

// IconRequest asks for one element's icon. Key is echoed back in the result.
type IconRequest struct {
	Key         string
	Slug        string
	UseFallback bool
}

// IconResult is a finished load. Image is nil when Err is set.
type IconResult struct {
	Key    string
	Source string
	Image  image.Image
	Err    error
}

// IconLoader fetches Simple Icons SVGs and rasterises them. A request tries
// the primary CDN, then the fallback CDN once if the request allows it.
type IconLoader struct {
	client    *http.Client
	primary   string
	fallback  string
	userAgent string
	size      int
	results   chan IconResult
}

func NewIconLoader(c cfg.IconConfig, size int) *IconLoader {
	return &IconLoader{
		client:    &http.Client{Timeout: c.Timeout},
		primary:   strings.TrimRight(c.PrimaryBase, "/"),
		fallback:  strings.TrimRight(c.FallbackBase, "/"),
		userAgent: c.UserAgent,
		size:      size,
		results:   make(chan IconResult, 32),
	}
}

func (l *IconLoader) PrimaryURL(slug string) string {
	return l.primary + "/" + slug
}

func (l *IconLoader) FallbackURL(slug string) string {
	return l.fallback + "/" + slug + ".svg"
}

// Fetch loads req in the background. The result is dropped if ctx ends
// before it can be delivered.
func (l *IconLoader) Fetch(ctx context.Context, req IconRequest) {
	go func() {
		res := l.Load(ctx, req)
		select {
		case l.results <- res:
		case <-ctx.Done():
		}
	}()
}

// Results delivers finished loads in completion order.
func (l *IconLoader) Results() <-chan IconResult {
	return l.results
}

// Load runs req synchronously.
func (l *IconLoader) Load(ctx context.Context, req IconRequest) IconResult {
	sources := []string{l.PrimaryURL(req.Slug)}
	if req.UseFallback {
		sources = append(sources, l.FallbackURL(req.Slug))
	}

	var lastErr error
	for _, src := range sources {
		img, err := l.fetch(ctx, src)
		if err == nil {
			return IconResult{Key: req.Key, Source: src, Image: img}
		}
		if ctx.Err() != nil {
			return IconResult{Key: req.Key, Err: ctx.Err()}
		}
		lastErr = err
	}

	log.Printf("Warning: Could not load icon %q: %v", req.Slug, lastErr)
	return IconResult{Key: req.Key, Err: fmt.Errorf("%w: %s: %v", ErrIconUnavailable, req.Slug, lastErr)}
}

func (l *IconLoader) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return Rasterize(data, l.size)
}

// Rasterize renders an SVG document into a size x size image.
func Rasterize(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
