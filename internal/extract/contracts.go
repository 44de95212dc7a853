package extract

import (
	"context"
	"image"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/template"
)

// HeaderClassifier is stage 1: page -> template to use.
type HeaderClassifier interface {
	Classify(ctx context.Context, img image.Image, family constants.DocType) (template.ID, error)
}

// FieldExtractor is stage 2: page + template -> field texts.
type FieldExtractor interface {
	Extract(ctx context.Context, img image.Image, id template.ID) (Result, error)
}
