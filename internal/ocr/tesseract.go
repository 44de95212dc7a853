package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
)

// Tesseract recognizes text by shelling out to the tesseract CLI.
type Tesseract struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewTesseract(cfg Config, runner Runner, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &Tesseract{cfg: cfg.withDefaults(), runner: runner, logger: logger}
}

// Recognize writes img to a temporary PNG and runs: tesseract <png> stdout -l <lang>
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, lang string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "df-ocr-*")
	if err != nil {
		return "", err
	}
	defer func(path string) {
		if err := os.RemoveAll(path); err != nil {
			t.logger.Warn("failed to remove temp dir", "path", path, "error", err)
		}
	}(tmpDir)

	in := filepath.Join(tmpDir, "region.png")
	if err := imaging.Save(img, in); err != nil {
		return "", fmt.Errorf("write region image: %w", err)
	}

	args := []string{in, "stdout"}
	if lang != "" {
		args = append(args, "-l", lang)
	}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}

	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, t.logger, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}
