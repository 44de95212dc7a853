package mocks

import (
	"context"
	"image"

	"github.com/stretchr/testify/mock"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/extract"
	"github.com/joseph-ayodele/docfields/internal/template"
)

// MockHeaderClassifier is a mock implementation of extract.HeaderClassifier.
type MockHeaderClassifier struct {
	mock.Mock
}

func (m *MockHeaderClassifier) Classify(ctx context.Context, img image.Image, family constants.DocType) (template.ID, error) {
	args := m.Called(ctx, img, family)
	return args.Get(0).(template.ID), args.Error(1)
}

// MockFieldExtractor is a mock implementation of extract.FieldExtractor.
type MockFieldExtractor struct {
	mock.Mock
}

func (m *MockFieldExtractor) Extract(ctx context.Context, img image.Image, id template.ID) (extract.Result, error) {
	args := m.Called(ctx, img, id)
	return args.Get(0).(extract.Result), args.Error(1)
}

// MockStatementSource is a mock implementation of pipeline.StatementSource.
type MockStatementSource struct {
	mock.Mock
}

func (m *MockStatementSource) Text(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}
