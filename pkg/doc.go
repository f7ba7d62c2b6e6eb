// Package pkg provides the libraries behind the scoresheet renderer.
//
// # Overview
//
// Scoresheet turns a rhythm game chart into a printable PNG score sheet.
// Seven lanes run bottom to top, bars are numbered on the left, and
// simultaneous notes are joined by connector lines. A long chart is cut
// into columns that sit side by side on one image.
//
// # Architecture
//
// The data flow through scoresheet:
//
//	chart.json
//	     ↓
//	[io] package (decode, skip bad notes, shift bars to 0-based)
//	     ↓
//	[score] package (document of taps, slides, specials)
//	     ↓
//	[render/sheet/layout] package (geometry and column windows)
//	     ↓
//	[render/sheet] package (strip pass, then composite pass)
//	     ↓
//	[render/sheet/sink] package (PNG encoding)
//
// # Quick Start
//
//	doc, err := io.ImportJSON("chart.json", logger)
//	if err != nil {
//	    return err
//	}
//	l, err := layout.ForDocument(layout.DefaultSettings(), doc)
//	if err != nil {
//	    return err
//	}
//	img, err := sheet.Render(doc, l)
//	if err != nil {
//	    return err
//	}
//	return io.ExportPNG(img, "sheet.png")
//
// # Main Packages
//
// [timing] - Bar-relative positions and their ordering.
//
// [score] - The note model. Each note draws itself through a Painter so
// renderers never switch on note variants.
//
// [render/sheet] - The two-pass renderer with [render/sheet/link] for
// connector scanning and [render/sheet/styles] for colors and strokes.
//
// [pipeline] - Load, layout and render stages with artifact caching, used
// by the CLI.
//
// [cache] - File and null caches plus key derivation.
//
// [config], [fonts], [errors], [observability] and [buildinfo] carry
// settings, typefaces, coded errors, hooks and version data.
package pkg
