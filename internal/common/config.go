package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. DOCFIELDS_OCR_DPI.
const EnvPrefix = "DOCFIELDS"

// Config holds all application configuration
type Config struct {
	OCR       OCRConfig       `mapstructure:"ocr" yaml:"ocr"`
	Templates TemplatesConfig `mapstructure:"templates" yaml:"templates"`
	Classify  ClassifyConfig  `mapstructure:"classify" yaml:"classify"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// OCRConfig holds the external renderer/recognizer configuration
type OCRConfig struct {
	Tesseract   string `mapstructure:"tesseract" yaml:"tesseract"`
	Pdftoppm    string `mapstructure:"pdftoppm" yaml:"pdftoppm"`
	Pdftotext   string `mapstructure:"pdftotext" yaml:"pdftotext"`
	Language    string `mapstructure:"language" yaml:"language"`
	DPI         int    `mapstructure:"dpi" yaml:"dpi"`
	PSM         int    `mapstructure:"psm" yaml:"psm"`
	TessdataDir string `mapstructure:"tessdata_dir" yaml:"tessdata_dir"`
}

// TemplatesConfig points at the region definition files
type TemplatesConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ClassifyConfig tunes header validation
type ClassifyConfig struct {
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
}

// OutputConfig controls where result files are written
type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns configuration with defaults resolved against the executable location.
func DefaultConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Tesseract: "tesseract",
			Pdftoppm:  "pdftoppm",
			Pdftotext: "pdftotext",
			Language:  "por",
			DPI:       300,
		},
		Templates: TemplatesConfig{
			Dir: filepath.Join(BasePath(), "data", "templates"),
		},
		Classify: ClassifyConfig{
			FuzzyThreshold: 0.8,
		},
		Output: OutputConfig{
			Dir: os.TempDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// BasePath returns the directory of the running executable, or "." when it cannot be resolved.
func BasePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// LoadConfig reads defaults, then the optional config file, then DOCFIELDS_* environment overrides.
// An empty cfgFile searches ./config.yaml, <executable dir>/config.yaml and ~/.docfields/config.yaml.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(BasePath())
		v.AddConfigPath("$HOME/.docfields")
	}

	// config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, ConfigurationError("error reading config file: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ConfigurationError("failed to unmarshal config: %v", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("ocr.tesseract", d.OCR.Tesseract)
	v.SetDefault("ocr.pdftoppm", d.OCR.Pdftoppm)
	v.SetDefault("ocr.pdftotext", d.OCR.Pdftotext)
	v.SetDefault("ocr.language", d.OCR.Language)
	v.SetDefault("ocr.dpi", d.OCR.DPI)
	v.SetDefault("ocr.psm", d.OCR.PSM)
	v.SetDefault("ocr.tessdata_dir", d.OCR.TessdataDir)
	v.SetDefault("templates.dir", d.Templates.Dir)
	v.SetDefault("classify.fuzzy_threshold", d.Classify.FuzzyThreshold)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	validator := NewValidator().
		Field("ocr.tesseract", c.OCR.Tesseract, Required).
		Field("ocr.language", c.OCR.Language, Required).
		Field("templates.dir", c.Templates.Dir, Required).
		Field("output.dir", c.Output.Dir, Required).
		Field("ocr.dpi", c.OCR.DPI, Positive).
		Field("classify.fuzzy_threshold", c.Classify.FuzzyThreshold, UnitInterval).
		Field("log.level", c.Log.Level, OneOf("debug", "info", "warn", "error"))
	if validator.HasErrors() {
		return ConfigurationError("%s", validator.ErrorMessage())
	}

	st, err := os.Stat(c.Templates.Dir)
	if err != nil || !st.IsDir() {
		return ConfigurationError("templates directory not found: %s", c.Templates.Dir)
	}
	return nil
}

// WriteDefault writes the default configuration as YAML to path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# docfields configuration
# Every key can be overridden with DOCFIELDS_<SECTION>_<KEY>, e.g. DOCFIELDS_OCR_DPI=200

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
