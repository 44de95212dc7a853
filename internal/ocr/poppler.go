package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
)

// Poppler renders PDF pages with pdftoppm and reads embedded text with pdftotext.
// Image inputs are decoded directly.
type Poppler struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewPoppler(cfg Config, runner Runner, logger *slog.Logger) *Poppler {
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &Poppler{cfg: cfg.withDefaults(), runner: runner, logger: logger}
}

// Render returns the first page of path as a raster image.
func (p *Poppler) Render(ctx context.Context, path string, dpi int) ([]image.Image, error) {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.IMAGE:
		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, common.InvalidInputError("failed to open image %s: %v", path, err)
		}
		return []image.Image{img}, nil
	case constants.PDF:
		img, err := p.renderFirstPage(ctx, path, dpi)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	default:
		return nil, common.InvalidInputError("unsupported document extension: %q", filepath.Ext(path))
	}
}

func (p *Poppler) renderFirstPage(ctx context.Context, path string, dpi int) (image.Image, error) {
	p.logPageCount(path)

	tmpDir, err := os.MkdirTemp("", "df-page-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func(path string) {
		if err := os.RemoveAll(path); err != nil {
			p.logger.Warn("failed to remove temp dir", "path", path, "error", err)
		}
	}(tmpDir)

	// pdftoppm -png -r <dpi> -f 1 -l 1 -singlefile <in.pdf> <tmp/page>
	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := p.runner.Run(ctx, p.cfg.Pdftoppm, p.logger,
		"-png", "-r", strconv.Itoa(dpi), "-f", "1", "-l", "1", "-singlefile", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, truncate(string(errb), 512))
	}

	img, err := imaging.Open(prefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}
	return img, nil
}

// logPageCount is informational only: poppler copes with files pdfcpu refuses.
func (p *Poppler) logPageCount(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	n, err := api.PageCount(f, nil)
	if err != nil {
		p.logger.Debug("pdf page count unavailable", "path", path, "error", err)
		return
	}
	if n > 1 {
		p.logger.Info("multi-page document, only the first page is used", "path", path, "pages", n)
	}
}

// PageText returns the embedded text layer of the first PDF page.
func (p *Poppler) PageText(ctx context.Context, path string) (string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix -f 1 -l 1 <path> -
	out, errb, err := p.runner.Run(ctx, p.cfg.Pdftotext, p.logger,
		"-layout", "-enc", "UTF-8", "-eol", "unix", "-f", "1", "-l", "1", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	// a form-feed closes each page
	return strings.TrimRight(string(out), "\f"), nil
}
