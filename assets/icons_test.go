package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	cfg "github.com/automoto/portfolio/config"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z" fill="#ff0000"/></svg>`

type cdn struct {
	mu   sync.Mutex
	hits map[string]int
	ok   map[string]bool
}

func newCDN(t *testing.T, ok ...string) (*cdn, *httptest.Server) {
	t.Helper()
	c := &cdn{hits: map[string]int{}, ok: map[string]bool{}}
	for _, p := range ok {
		c.ok[p] = true
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.hits[r.URL.Path]++
		serve := c.ok[r.URL.Path]
		c.mu.Unlock()
		if !serve {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(squareSVG))
	}))
	t.Cleanup(srv.Close)
	return c, srv
}

func (c *cdn) count(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits[path]
}

func loaderFor(srv *httptest.Server) *IconLoader {
	return NewIconLoader(cfg.IconConfig{
		PrimaryBase:  srv.URL + "/primary/",
		FallbackBase: srv.URL + "/fallback",
		Timeout:      2 * time.Second,
		UserAgent:    "test",
	}, 16)
}

func TestIconLoader_URLs(t *testing.T) {
	l := NewIconLoader(cfg.Icons, 16)
	if got, want := l.PrimaryURL("go"), "https://cdn.simpleicons.org/go"; got != want {
		t.Errorf("PrimaryURL = %q, want %q", got, want)
	}
	if got, want := l.FallbackURL("go"), "https://cdn.jsdelivr.net/npm/simple-icons@latest/icons/go.svg"; got != want {
		t.Errorf("FallbackURL = %q, want %q", got, want)
	}
}

func TestIconLoader_Load(t *testing.T) {
	tests := []struct {
		name        string
		serve       []string
		useFallback bool
		wantSource  string
		wantErr     bool
		wantHits    map[string]int
	}{
		{
			name:        "primary succeeds",
			serve:       []string{"/primary/go"},
			useFallback: true,
			wantSource:  "/primary/go",
			wantHits:    map[string]int{"/primary/go": 1, "/fallback/go.svg": 0},
		},
		{
			name:        "falls back once",
			serve:       []string{"/fallback/go.svg"},
			useFallback: true,
			wantSource:  "/fallback/go.svg",
			wantHits:    map[string]int{"/primary/go": 1, "/fallback/go.svg": 1},
		},
		{
			name:        "both fail",
			useFallback: true,
			wantErr:     true,
			wantHits:    map[string]int{"/primary/go": 1, "/fallback/go.svg": 1},
		},
		{
			name:     "no fallback allowed",
			serve:    []string{"/fallback/go.svg"},
			wantErr:  true,
			wantHits: map[string]int{"/primary/go": 1, "/fallback/go.svg": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newCDN(t, tt.serve...)
			l := loaderFor(srv)

			res := l.Load(context.Background(), IconRequest{Key: "skill/go", Slug: "go", UseFallback: tt.useFallback})

			if res.Key != "skill/go" {
				t.Errorf("Key = %q", res.Key)
			}
			if tt.wantErr {
				if !errors.Is(res.Err, ErrIconUnavailable) {
					t.Fatalf("Err = %v, want ErrIconUnavailable", res.Err)
				}
				if res.Image != nil {
					t.Error("image set on failure")
				}
			} else {
				if res.Err != nil {
					t.Fatalf("Err = %v", res.Err)
				}
				if res.Source != srv.URL+tt.wantSource {
					t.Errorf("Source = %q, want %q", res.Source, srv.URL+tt.wantSource)
				}
				if res.Image == nil || res.Image.Bounds().Dx() != 16 {
					t.Errorf("unexpected image %v", res.Image)
				}
			}
			for path, want := range tt.wantHits {
				if got := c.count(path); got != want {
					t.Errorf("hits[%s] = %d, want %d", path, got, want)
				}
			}
		})
	}
}

func TestIconLoader_FetchDeliversResult(t *testing.T) {
	_, srv := newCDN(t, "/primary/github")
	l := loaderFor(srv)

	l.Fetch(context.Background(), IconRequest{Key: "social/0", Slug: "github"})

	select {
	case res := <-l.Results():
		if res.Err != nil || res.Key != "social/0" {
			t.Fatalf("result = %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestRasterize(t *testing.T) {
	img, err := Rasterize([]byte(squareSVG), 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := img.At(4, 4).RGBA(); a == 0 {
		t.Error("center pixel is transparent")
	}
}
