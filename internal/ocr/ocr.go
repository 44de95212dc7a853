// Package ocr wraps the external page renderer (poppler) and text recognizer (tesseract).
// Both are driven through Runner so tests can stub the binaries.
package ocr

import (
	"context"
	"image"
	"os/exec"

	"github.com/joseph-ayodele/docfields/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TessdataDir string
	PSM         int // page segmentation mode; 0 keeps the tesseract default
}

func (c Config) withDefaults() Config {
	if c.Pdftotext == "" {
		c.Pdftotext = "pdftotext"
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	return c
}

// ConfigFrom maps the application OCR section onto the tool config.
func ConfigFrom(c common.OCRConfig) Config {
	return Config{
		Pdftotext:   c.Pdftotext,
		Pdftoppm:    c.Pdftoppm,
		Tesseract:   c.Tesseract,
		TessdataDir: c.TessdataDir,
		PSM:         c.PSM,
	}
}

// Renderer turns a document into raster pages. Callers only ever use the first page.
type Renderer interface {
	Render(ctx context.Context, path string, dpi int) ([]image.Image, error)
}

// Recognizer turns a (binarized) image into plain text.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image, lang string) (string, error)
}

// CheckTools fails with a configuration error when any binary is not resolvable on PATH.
func CheckTools(binaries ...string) error {
	for _, b := range binaries {
		if _, err := exec.LookPath(b); err != nil {
			return common.ConfigurationError("required external tool not found: %s", b)
		}
	}
	return nil
}

// Tools lists the binaries a full run may invoke, for CheckTools.
func Tools(c Config) []string {
	c = c.withDefaults()
	return []string{c.Tesseract, c.Pdftoppm, c.Pdftotext}
}
