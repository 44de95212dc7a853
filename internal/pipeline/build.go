package pipeline

import (
	"log/slog"

	"github.com/joseph-ayodele/docfields/internal/classify"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/extract"
	"github.com/joseph-ayodele/docfields/internal/ocr"
	"github.com/joseph-ayodele/docfields/internal/region"
	"github.com/joseph-ayodele/docfields/internal/statement"
	"github.com/joseph-ayodele/docfields/internal/template"
)

// Build wires the production stages (poppler, tesseract, on-disk templates) from cfg.
func Build(cfg *common.Config, logger *slog.Logger) (*Processor, *template.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store, err := template.NewStore(cfg.Templates.Dir, logger)
	if err != nil {
		return nil, nil, err
	}

	ocrCfg := ocr.ConfigFrom(cfg.OCR)
	runner := ocr.ExecRunner()
	poppler := ocr.NewPoppler(ocrCfg, runner, logger)
	tess := ocr.NewTesseract(ocrCfg, runner, logger)
	regions := region.NewExtractor(tess, cfg.OCR.Language, logger)

	deps := Deps{
		Renderer:   poppler,
		Classifier: classify.NewClassifier(store, regions, cfg.Classify.FuzzyThreshold, logger),
		Fields:     extract.NewOrchestrator(store, regions, logger),
		Statements: statement.NewTextSource(poppler, poppler, regions, cfg.OCR.DPI, logger),
		DPI:        cfg.OCR.DPI,
		Tools:      ocr.Tools(ocrCfg),
	}
	return NewProcessor(deps, logger), store, nil
}
