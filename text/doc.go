// Package text renders the short labels and digits drawn on the panel.
//
// Glyphs are rasterized with golang.org/x/image/font/opentype and
// thresholded to pure black or white. Advances are measured with
// go-text/typesetting's HarfBuzz shaper so kerning matches what is drawn.
// Labels in right-to-left scripts are reordered with
// golang.org/x/text/unicode/bidi before drawing.
//
// The default face is Go Regular:
//
//	f := text.Default()
//	w, h := f.Measure("Generate", 35)
//	f.Draw(img, "Generate", 35, 1257, 83, color.Black)
package text
