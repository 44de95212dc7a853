// Package region reads the text inside one rectangular area of a rendered page.
package region

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/joseph-ayodele/docfields/internal/ocr"
)

// Extractor crops, binarizes and recognizes page regions.
type Extractor struct {
	recognizer ocr.Recognizer
	lang       string
	logger     *slog.Logger
}

func NewExtractor(recognizer ocr.Recognizer, lang string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{recognizer: recognizer, lang: lang, logger: logger}
}

// Extract returns the single-line text inside r. Degenerate regions, and regions
// lying entirely outside the page, yield "" without calling the recognizer.
func (e *Extractor) Extract(ctx context.Context, img image.Image, r Rect) (string, error) {
	if r.Empty() {
		return "", nil
	}
	origin := img.Bounds().Min
	area := r.Bounds().Add(origin).Intersect(img.Bounds())
	if area.Empty() {
		e.logger.Debug("region outside page", "rect", r.String(), "page", img.Bounds().String())
		return "", nil
	}

	bin := Binarize(imaging.Crop(img, area))
	txt, err := e.recognizer.Recognize(ctx, bin, e.lang)
	if err != nil {
		return "", fmt.Errorf("recognize region %s: %w", r, err)
	}
	return ocr.SingleLine(txt), nil
}

// Page recognizes the whole page, keeping its line structure.
func (e *Extractor) Page(ctx context.Context, img image.Image) (string, error) {
	txt, err := e.recognizer.Recognize(ctx, Binarize(img), e.lang)
	if err != nil {
		return "", fmt.Errorf("recognize page: %w", err)
	}
	return ocr.Normalize(txt), nil
}
