package statement

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/ocr"
	"github.com/joseph-ayodele/docfields/internal/region"
)

// PageTexter reads the embedded text layer of a PDF's first page.
type PageTexter interface {
	PageText(ctx context.Context, path string) (string, error)
}

// TextSource produces the full first-page text of a statement: the PDF text
// layer when present, OCR of the rendered page otherwise.
type TextSource struct {
	texter   PageTexter
	renderer ocr.Renderer
	regions  *region.Extractor
	dpi      int
	logger   *slog.Logger
}

func NewTextSource(texter PageTexter, renderer ocr.Renderer, regions *region.Extractor, dpi int, logger *slog.Logger) *TextSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextSource{texter: texter, renderer: renderer, regions: regions, dpi: dpi, logger: logger}
}

func (s *TextSource) Text(ctx context.Context, path string) (string, error) {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.TXT:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", common.InvalidInputError("failed to read %s: %v", path, err)
		}
		return string(b), nil
	case constants.PDF:
		txt, err := s.texter.PageText(ctx, path)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf text: %w", err)
		}
		if strings.TrimSpace(txt) != "" {
			s.logger.Debug("statement text from pdf layer", "path", path, "bytes", len(txt))
			return ocr.Normalize(txt), nil
		}
		s.logger.Info("pdf has no text layer, falling back to ocr", "path", path)
		return s.ocrPage(ctx, path)
	case constants.IMAGE:
		return s.ocrPage(ctx, path)
	default:
		return "", common.InvalidInputError("unsupported statement extension: %q", filepath.Ext(path))
	}
}

func (s *TextSource) ocrPage(ctx context.Context, path string) (string, error) {
	pages, err := s.renderer.Render(ctx, path, s.dpi)
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", common.InvalidInputError("document has no pages: %s", path)
	}
	return s.regions.Page(ctx, pages[0])
}
