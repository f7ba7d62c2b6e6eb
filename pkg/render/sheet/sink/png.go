// Package sink encodes rendered sheets.
package sink

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/scoresheet/pkg/errors"
)

// PNGOption configures PNG encoding.
type PNGOption func(*pngEncoder)

type pngEncoder struct {
	level png.CompressionLevel
}

// WithCompression sets the zlib compression level.
func WithCompression(level png.CompressionLevel) PNGOption {
	return func(e *pngEncoder) { e.level = level }
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image, opts ...PNGOption) error {
	e := pngEncoder{level: png.DefaultCompression}
	for _, opt := range opts {
		opt(&e)
	}
	if err := imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(e.level)); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "encode png")
	}
	return nil
}

// RenderPNG encodes img into memory. Nothing is returned unless encoding
// completed.
func RenderPNG(img image.Image, opts ...PNGOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
