package constants

import (
	"slices"
	"strings"
)

// DocType identifies a document family accepted on the command line.
type DocType string

const (
	CNH     DocType = "CNH"     // driver license
	CRLV    DocType = "CRLV"    // vehicle registration
	TARIFAS DocType = "TARIFAS" // tariff/service statement
)

var allDocTypes = []DocType{CNH, CRLV, TARIFAS}

// AllDocTypes returns the supported document types in display order.
func AllDocTypes() []DocType {
	return slices.Clone(allDocTypes)
}

// ParseDocType resolves a case-insensitive type name.
func ParseDocType(s string) (DocType, bool) {
	d := DocType(strings.ToUpper(strings.TrimSpace(s)))
	if slices.Contains(allDocTypes, d) {
		return d, true
	}
	return "", false
}

// Dir is the template directory name for the family.
func (d DocType) Dir() string {
	return strings.ToLower(string(d))
}

// Template variants.
const (
	VariantNational      = "national"
	VariantDigital       = "digital"
	VariantLegacyDigital = "legacy-digital"
	VariantState         = "state"
	VariantDefault       = "default"
)

// HeaderTemplate is the pseudo-variant holding the single "header" region of a family.
const (
	HeaderTemplate = "header"
	HeaderRegion   = "header"
)
