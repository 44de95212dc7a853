package common_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docfields/internal/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := common.DefaultConfig()

	assert.Equal(t, "por", cfg.OCR.Language)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, 0.8, cfg.Classify.FuzzyThreshold)
	assert.Equal(t, os.TempDir(), cfg.Output.Dir)
	assert.Equal(t, filepath.Join(common.BasePath(), "data", "templates"), cfg.Templates.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ocr:
  language: eng
  dpi: 150
templates:
  dir: /srv/templates
classify:
  fuzzy_threshold: 0.9
`), 0o644))
	t.Setenv("DOCFIELDS_OCR_DPI", "200")
	t.Setenv("DOCFIELDS_OUTPUT_DIR", "/tmp/results")

	cfg, err := common.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.Equal(t, 200, cfg.OCR.DPI)
	assert.Equal(t, "/srv/templates", cfg.Templates.Dir)
	assert.Equal(t, 0.9, cfg.Classify.FuzzyThreshold)
	assert.Equal(t, "/tmp/results", cfg.Output.Dir)
	// untouched keys keep their defaults
	assert.Equal(t, "tesseract", cfg.OCR.Tesseract)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := common.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfiguration)
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, common.WriteDefault(path))

	cfg, err := common.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, common.DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := common.DefaultConfig()
	cfg.Templates.Dir = t.TempDir()
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Classify.FuzzyThreshold = 1.5
	bad.Log.Level = "verbose"
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfiguration)
	assert.Contains(t, err.Error(), "classify.fuzzy_threshold")
	assert.Contains(t, err.Error(), "log.level")

	missing := *cfg
	missing.Templates.Dir = filepath.Join(t.TempDir(), "nope")
	err = missing.Validate()
	require.Error(t, err)
	assert.Contains(t, common.UserMessage(err), "templates directory not found")
}
