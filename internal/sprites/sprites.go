// Package sprites downloads the front and back sprite images of a detail
// record so they can be opened outside the terminal.
package sprites

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/logging"
)

// ErrNoSprites is returned when a record has neither sprite URL.
var ErrNoSprites = errors.New("record has no sprites")

// Getter issues GET requests; *catalog.Client satisfies it.
type Getter interface {
	Get(ctx context.Context, rawURL string) (*http.Response, error)
}

// Side names a sprite.
type Side string

// Sprite sides.
const (
	Front Side = "front"
	Back  Side = "back"
)

// File is one downloaded sprite.
type File struct {
	Side Side   `json:"side"`
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Download writes the record's sprites into dir as <name>_<side><ext>,
// fetching both concurrently. Empty URLs are skipped. Any failure fails the
// call; files already written are left in place.
func Download(ctx context.Context, getter Getter, detail catalog.Detail, dir string) ([]File, error) {
	targets := make([]File, 0, 2)
	for _, t := range []File{
		{Side: Front, URL: detail.FrontImageURL},
		{Side: Back, URL: detail.BackImageURL},
	} {
		if t.URL == "" {
			continue
		}
		t.Path = filepath.Join(dir, fileName(detail.Name, t.Side, t.URL))
		targets = append(targets, t)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSprites, detail.Name)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating sprite directory: %w", err)
	}

	log := logging.FromContext(ctx)
	g, gCtx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			if err := downloadFile(gCtx, getter, t.URL, t.Path); err != nil {
				return fmt.Errorf("downloading %s sprite: %w", t.Side, err)
			}
			log.Debug().Str("url", t.URL).Str("path", t.Path).Msg("sprite saved")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return targets, nil
}

func downloadFile(ctx context.Context, getter Getter, rawURL, dest string) error {
	resp, err := getter.Get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err = io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return out.Close()
}

// fileName keeps the URL's extension, defaulting to .png.
func fileName(name string, side Side, rawURL string) string {
	base := rawURL
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	ext := path.Ext(base)
	if ext == "" || len(ext) > 5 {
		ext = ".png"
	}
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, name)
	if safe == "" {
		safe = "sprite"
	}
	return fmt.Sprintf("%s_%s%s", safe, side, ext)
}
