// Package annotate draws a template's regions over a page, for checking coordinates by eye.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/joseph-ayodele/docfields/internal/template"
)

// Style controls the overlay look.
type Style struct {
	Stroke    color.Color
	Label     color.Color
	LineWidth float64
}

var DefaultStyle = Style{
	Stroke:    color.RGBA{R: 220, A: 255},
	Label:     color.RGBA{B: 200, A: 255},
	LineWidth: 3,
}

// Draw returns a copy of page with every field rectangle of t outlined and labelled.
// Rectangles are relative to the page bounds, as for extraction.
func Draw(page image.Image, t *template.Template, style Style) image.Image {
	if style.LineWidth <= 0 {
		style.LineWidth = DefaultStyle.LineWidth
	}
	if style.Stroke == nil {
		style.Stroke = DefaultStyle.Stroke
	}
	if style.Label == nil {
		style.Label = DefaultStyle.Label
	}

	// gg works in the page's own coordinates starting at 0,0
	dc := gg.NewContextForImage(imaging.Clone(page))
	dc.SetLineWidth(style.LineWidth)

	for _, f := range t.Fields {
		r := f.Rect.Normalize()
		if r.Empty() {
			continue
		}
		dc.SetColor(style.Stroke)
		dc.DrawRectangle(float64(r.X1), float64(r.Y1), float64(r.X2-r.X1), float64(r.Y2-r.Y1))
		dc.Stroke()

		dc.SetColor(style.Label)
		_, h := dc.MeasureString(f.Name)
		y := float64(r.Y1) - 4
		if y-h < 0 {
			y = float64(r.Y2) + h + 2
		}
		dc.DrawString(f.Name, float64(r.X1), y)
	}
	return dc.Image()
}

// Save writes img as PNG or JPEG depending on path's extension.
func Save(path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
	default:
		return fmt.Errorf("unsupported overlay extension %q (want .png or .jpg)", filepath.Ext(path))
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save overlay: %w", err)
	}
	return nil
}

// OutputPath is "<dir>/<input base>_<variant>.png".
func OutputPath(dir, input string, id template.ID) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", base, id.Variant))
}
