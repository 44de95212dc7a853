package classify

import (
	"strings"

	"github.com/joseph-ayodele/docfields/constants"
)

// Family is the header-validation rule plus variant cascade of one document type.
type Family struct {
	Type constants.DocType
	Name string // used in messages

	// Keyword passes validation on an approximate token match.
	Keyword string
	// Markers pass validation on an exact (case-insensitive) substring match.
	Markers []string

	Cascade Cascade
}

// Accepts runs the family validity check against a header text.
func (f Family) Accepts(header string, threshold float64) bool {
	if f.Keyword != "" && ContainsSimilar(header, f.Keyword, threshold) {
		return true
	}
	upper := strings.ToUpper(header)
	for _, m := range f.Markers {
		if strings.Contains(upper, strings.ToUpper(m)) {
			return true
		}
	}
	return false
}

const cnhDigital = "CNH DIGITAL"

var families = map[constants.DocType]Family{
	constants.CNH: {
		Type:    constants.CNH,
		Name:    "CNH",
		Keyword: "HABILITAÇÃO",
		Markers: []string{cnhDigital},
		Cascade: Cascade{
			Rules: []Rule{
				{
					Name:    "foreign-language",
					Match:   Contains("DRIVER LICENSE", "PERMISO DE CONDUCCIÓN"),
					Variant: constants.VariantNational,
				},
				{
					Name:    "digital-without-nc",
					Match:   AllOf(Contains(cnhDigital), Not(Contains("NC"))),
					Variant: constants.VariantLegacyDigital,
				},
				{
					Name:    "digital",
					Match:   AllOf(Contains(cnhDigital), Contains("NC")),
					Variant: constants.VariantDigital,
				},
			},
			Default: constants.VariantState,
		},
	},
	constants.CRLV: {
		Type:    constants.CRLV,
		Name:    "CRLV",
		Markers: []string{"LICENCIAMENTO DE VEÍCULO"},
		Cascade: Cascade{Default: constants.VariantDefault},
	},
}

// FamilyFor returns the header rules of a document type. Statements have none.
func FamilyFor(t constants.DocType) (Family, bool) {
	f, ok := families[t]
	return f, ok
}
