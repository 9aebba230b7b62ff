package docbind

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Image normalization defaults. Both are tunable through compiler options
// and the CLI config file.
const (
	DefaultImageBound  = 800 // max width or height in pixels
	DefaultJPEGQuality = 85
)

// normalizedFormat is the format every embedded image is re-encoded to.
const normalizedFormat = "jpeg"

// NormalizeImage produces bytes suitable for embedding: decode, downscale so
// the larger dimension is at most bound (aspect ratio preserved, Lanczos
// resampling), flatten onto a white RGB background, and re-encode as JPEG at
// the given quality. Pure function: no state is shared between invocations.
//
// Flattening always composites onto white, including for images without an
// alpha channel; the composite is a no-op for opaque sources, and doing it
// unconditionally keeps the output deterministic across decoders.
//
// Fails with ErrImageDecode if the bytes do not decode.
func NormalizeImage(data []byte, bound, quality int) ([]byte, int, int, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	size := img.Bounds().Size()
	if size.X > bound || size.Y > bound {
		if size.X >= size.Y {
			img = imaging.Resize(img, bound, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, bound, imaging.Lanczos)
		}
		size = img.Bounds().Size()
	}

	white := imaging.New(size.X, size.Y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	flat := imaging.Overlay(white, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, 0, 0, fmt.Errorf("encoding normalized image: %w", err)
	}

	return buf.Bytes(), size.X, size.Y, nil
}

// normalizeBlocks replaces every image block in place with its normalized
// copy. A block that fails to decode becomes a failure placeholder; other
// blocks are untouched. Returns the per-block errors for logging.
func normalizeBlocks(blocks []Block, bound, quality int) []error {
	var errs []error
	for i, b := range blocks {
		img, ok := b.(ImageBlock)
		if !ok {
			continue
		}

		data, w, h, err := NormalizeImage(img.Data, bound, quality)
		if err != nil {
			blocks[i] = FailureBlock{Name: img.Name, Reason: err.Error()}
			errs = append(errs, fmt.Errorf("%s: %w", img.Name, err))
			continue
		}

		img.Data = data
		img.Width = w
		img.Height = h
		img.Format = normalizedFormat
		img.Normalized = true
		blocks[i] = img
	}
	return errs
}
