// Package extract reads every region of a classified template into a flat result.
package extract

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/region"
	"github.com/joseph-ayodele/docfields/internal/template"
)

var successMessages = map[constants.DocType]string{
	constants.CNH:  "CNH data extracted successfully.",
	constants.CRLV: "CRLV data extracted successfully.",
}

// SuccessMessage is the fixed message attached to a successful extraction.
func SuccessMessage(family constants.DocType) string {
	if m, ok := successMessages[family]; ok {
		return m
	}
	return fmt.Sprintf("%s data extracted successfully.", family)
}

type Orchestrator struct {
	store   *template.Store
	regions *region.Extractor
	logger  *slog.Logger
}

func NewOrchestrator(store *template.Store, regions *region.Extractor, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{store: store, regions: regions, logger: logger}
}

// Extract runs every field of template id over img, in template order.
// Empty text is a valid value; any recognizer failure aborts the whole result.
func (o *Orchestrator) Extract(ctx context.Context, img image.Image, id template.ID) (Result, error) {
	start := time.Now()
	t, err := o.store.Variant(id)
	if err != nil {
		return Result{}, err
	}

	fields := make([]FieldValue, 0, len(t.Fields))
	empty := 0
	for _, f := range t.Fields {
		txt, err := o.regions.Extract(ctx, img, f.Rect)
		if err != nil {
			return Result{}, fmt.Errorf("field %s: %w", f.Name, err)
		}
		if txt == "" {
			empty++
		}
		fields = append(fields, FieldValue{Name: f.Name, Text: txt})
	}

	o.logger.Info("fields extracted",
		"template", id.String(),
		"fields", len(fields),
		"empty", empty,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Status:  constants.StatusSuccess,
		Message: SuccessMessage(id.Family),
		Fields:  fields,
	}, nil
}
