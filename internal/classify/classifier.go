// Package classify validates a document's header text and picks its template variant.
package classify

import (
	"context"
	"image"
	"log/slog"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/region"
	"github.com/joseph-ayodele/docfields/internal/template"
)

// DefaultThreshold is the minimum keyword similarity accepted by Family.Accepts.
const DefaultThreshold = 0.8

type Classifier struct {
	store     *template.Store
	regions   *region.Extractor
	threshold float64
	logger    *slog.Logger
}

func NewClassifier(store *template.Store, regions *region.Extractor, threshold float64, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{store: store, regions: regions, threshold: threshold, logger: logger}
}

// Classify reads the family's header region from img and returns the template to extract with.
func (c *Classifier) Classify(ctx context.Context, img image.Image, family constants.DocType) (template.ID, error) {
	fam, ok := FamilyFor(family)
	if !ok {
		return template.ID{}, common.InvalidInputError("document type %s has no header rules", family)
	}

	header, err := c.store.Header(family)
	if err != nil {
		return template.ID{}, err
	}
	f, _ := header.Field(constants.HeaderRegion)

	text, err := c.regions.Extract(ctx, img, f.Rect)
	if err != nil {
		return template.ID{}, common.WrapError(err, "read header")
	}

	id, rule, err := Decide(fam, text, c.threshold)
	if err != nil {
		c.logger.Warn("header rejected", "family", family, "header", text)
		return template.ID{}, err
	}
	c.logger.Info("document classified", "family", family, "variant", id.Variant, "rule", rule)
	return id, nil
}

// Decide validates header against fam and runs its variant cascade.
func Decide(fam Family, header string, threshold float64) (template.ID, string, error) {
	if !fam.Accepts(header, threshold) {
		return template.ID{}, "", common.ValidationFailure("document does not look like a valid %s (header does not match)", fam.Name)
	}
	variant, rule := fam.Cascade.Select(header)
	return template.ID{Family: fam.Type, Variant: variant}, rule, nil
}
