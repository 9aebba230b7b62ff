package docbind

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Header decoders for probeImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// extractImage reads an image file as a single image block. Dimensions come
// from the file header only; full decoding is deferred to the normalizer.
func extractImage(path string) ([]Block, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the scanned directory
	if err != nil {
		return nil, err
	}

	w, h, format, err := probeImage(data)
	if err != nil {
		return nil, err
	}

	return []Block{ImageBlock{
		Name:   filepath.Base(path),
		Data:   data,
		Width:  w,
		Height: h,
		Format: format,
	}}, nil
}

// probeImage reads declared dimensions and format from an image header
// without decoding pixel data.
func probeImage(data []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", fmt.Errorf("reading image header: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}
