// Package cover saves OpenLibrary cover images to disk. When an image
// cannot be fetched or decoded a generated placeholder is written in its
// place, so a caller always ends up with a viewable file.
package cover

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/schollz/progressbar/v3"
)

const (
	defaultMaxWidth = 600

	placeholderWidth  = 150
	placeholderHeight = 200
)

var placeholderColor = color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Options describe one cover download.
type Options struct {
	// URL of the image. Empty means the book has no cover.
	URL string
	// Path to write. The extension selects the image format.
	Path string
	// MaxWidth bounds the saved width; wider images are scaled down.
	MaxWidth int
	// Progress receives a progress bar when non-nil.
	Progress io.Writer
}

// Result describes what was written.
type Result struct {
	Path        string
	Width       int
	Height      int
	Placeholder bool
}

// Save downloads opts.URL, resizes it and writes it to opts.Path. Download
// and decode failures fall back to a placeholder image; only failures to
// write the file are returned as errors.
func Save(ctx context.Context, client HTTPDoer, opts Options) (*Result, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("cover: output path is required")
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = defaultMaxWidth
	}

	var img image.Image
	placeholder := false

	if opts.URL == "" {
		slog.Info("Book has no cover, writing placeholder", "path", opts.Path)
		img, placeholder = Placeholder(), true
	} else {
		fetched, err := fetch(ctx, client, opts.URL, opts.Progress)
		if err != nil {
			slog.Warn("Cover unavailable, writing placeholder", "url", opts.URL, "error", err)
			img, placeholder = Placeholder(), true
		} else {
			img = fetched
		}
	}

	if img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cover directory: %w", err)
		}
	}
	if err := imaging.Save(img, opts.Path, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("saving cover: %w", err)
	}

	bounds := img.Bounds()
	return &Result{
		Path:        opts.Path,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Placeholder: placeholder,
	}, nil
}

// Placeholder returns the image used in place of a missing cover.
func Placeholder() image.Image {
	return imaging.New(placeholderWidth, placeholderHeight, placeholderColor)
}

func fetch(ctx context.Context, client HTTPDoer, url string, progress io.Writer) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading cover", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if progress != nil {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Downloading cover"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		body = io.TeeReader(resp.Body, bar)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading cover: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding cover: %w", err)
	}
	return img, nil
}
