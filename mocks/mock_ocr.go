package mocks

import (
	"context"
	"image"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

// MockRecognizer is a mock implementation of ocr.Recognizer.
type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) Recognize(ctx context.Context, img image.Image, lang string) (string, error) {
	args := m.Called(ctx, img, lang)
	return args.String(0), args.Error(1)
}

// MockRenderer is a mock implementation of ocr.Renderer.
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, path string, dpi int) ([]image.Image, error) {
	args := m.Called(ctx, path, dpi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]image.Image), args.Error(1)
}

// MockRunner is a mock implementation of ocr.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, logger *slog.Logger, args ...string) ([]byte, []byte, error) {
	ret := m.Called(ctx, name, args)
	var stdout, stderr []byte
	if v := ret.Get(0); v != nil {
		stdout = v.([]byte)
	}
	if v := ret.Get(1); v != nil {
		stderr = v.([]byte)
	}
	return stdout, stderr, ret.Error(2)
}

// MockPageTexter is a mock implementation of statement.PageTexter.
type MockPageTexter struct {
	mock.Mock
}

func (m *MockPageTexter) PageText(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}
