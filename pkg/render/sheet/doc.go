// Package sheet draws a parsed chart as a paginated score sheet.
//
// # Overview
//
// Rendering happens in two passes:
//
//  1. Strip: every bar is drawn bottom to top into one tall column. The
//     grid goes first, then the connector lines from [link.Scan], then
//     the notes through a [score.Painter] backed by fogleman/gg.
//  2. Composite: the strip is cut into windows of [layout.Settings]
//     BarsPerColumn bars each and placed left to right on the final
//     image, bottom-aligned, with the metadata text in the top-left
//     corner and rules marking where a column continues.
//
// # Usage
//
//	l, err := layout.ForDocument(layout.DefaultSettings(), doc)
//	if err != nil {
//	    return err
//	}
//	img, err := sheet.Render(doc, l, sheet.WithStyle(styles.Default(faces.Meta, faces.BarNumber)))
//
// Encoding lives in [sink].
//
// [link.Scan]: github.com/matzehuels/scoresheet/pkg/render/sheet/link
// [sink]: github.com/matzehuels/scoresheet/pkg/render/sheet/sink
package sheet
