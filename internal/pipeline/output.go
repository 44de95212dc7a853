package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/anyascii/go"
	"github.com/google/uuid"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// OutputPath is a fresh, collision-free result file in dir.
func OutputPath(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("dados_%s.json", uuid.NewString()))
}

// NamedOutputPath derives the result file from the input's base name,
// transliterated to ASCII: "Extrato São Paulo.pdf" -> "Extrato_Sao_Paulo_extraido.json".
func NamedOutputPath(dir, input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	base = anyascii.Transliterate(base)
	base = strings.Trim(unsafeName.ReplaceAllString(base, "_"), "_.")
	if base == "" {
		base = "documento"
	}
	return filepath.Join(dir, base+"_extraido.json")
}

// WriteJSON writes v as indented UTF-8 JSON (no HTML escaping), creating the parent dir.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
