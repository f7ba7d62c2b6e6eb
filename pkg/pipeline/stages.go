package pipeline

import (
	"bytes"

	"github.com/matzehuels/scoresheet/pkg/cache"
	"github.com/matzehuels/scoresheet/pkg/fonts"
	"github.com/matzehuels/scoresheet/pkg/io"
	"github.com/matzehuels/scoresheet/pkg/render/sheet"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/sink"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/styles"
	"github.com/matzehuels/scoresheet/pkg/score"
)

// Load reads and decodes the chart at opts.Input. It also returns the raw
// chart bytes for cache keys.
func Load(opts Options) (*score.Document, []byte, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, err
	}
	data, err := io.ReadChart(opts.Input)
	if err != nil {
		return nil, nil, err
	}
	doc, err := io.ReadJSON(bytes.NewReader(data), opts.Logger.With("chart", opts.Input))
	if err != nil {
		return nil, nil, err
	}
	return doc, data, nil
}

// ComputeLayout sizes the sheet for doc.
func ComputeLayout(doc *score.Document, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	return layout.ForDocument(opts.Layout, doc)
}

// RenderFromLayout draws doc with l and returns the encoded PNG.
func RenderFromLayout(doc *score.Document, l layout.Layout, opts Options) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	faces, err := fonts.NewFaces(opts.Font, opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	renderOpts := []sheet.RenderOption{
		sheet.WithStyle(styles.Default(faces.Meta, faces.BarNumber)),
		sheet.WithLogger(opts.Logger),
	}
	if opts.NoMetadata {
		renderOpts = append(renderOpts, sheet.WithoutMetadata())
	}

	img, err := sheet.Render(doc, l, renderOpts...)
	if err != nil {
		return nil, err
	}
	return sink.RenderPNG(img)
}

// fontHash returns the content hash of the configured font, empty for the
// embedded face.
func fontHash(opts Options) (string, error) {
	if opts.Font == "" {
		return "", nil
	}
	data, err := fonts.ReadFile(opts.Font)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
