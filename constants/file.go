package constants

import "strings"

// Input formats understood by the renderer and the statement text source.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
	TXT   = "TXT"
)

// FileTypes holds the allowed input formats.
var FileTypes = []string{PDF, IMAGE, TXT}

// AllowedExtensions holds the extensions picked up by the drop-folder watcher.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension (with or without dot) to one of FileTypes.
// Returns "" for anything unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg", "tif", "tiff", "bmp":
		return IMAGE
	case "txt":
		return TXT
	default:
		return ""
	}
}
