// Package statement turns the text of a tariff/service statement into service records.
package statement

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/docfields/internal/common"
)

var (
	reLine  = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(R\$\s*[\d.,]+)$`)
	rePlate = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)
	reValue = regexp.MustCompile(`^R\$\s*`)
)

// IsPlate reports whether tok looks like a vehicle plate (old or Mercosul format).
func IsPlate(tok string) bool {
	return rePlate.MatchString(tok)
}

// Parse extracts one Record per matching line, in line order.
// Lines that do not match the record pattern are skipped; no match at all is an error.
func Parse(text string) ([]Record, error) {
	var records []Record
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := ParseLine(line); ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, common.NoRecordsError("no service lines found in statement")
	}
	return records, nil
}

// ParseLine decodes "<DD/MM/YYYY> <name> <rg> [tractor] [trailer] <role> R$ <value>".
func ParseLine(line string) (Record, bool) {
	m := reLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Record{}, false
	}
	rec := decompose(strings.Fields(m[2]))
	rec.Date = m[1]
	rec.Value = reValue.ReplaceAllString(m[3], "R$ ")
	return rec, true
}

// decompose strips fixed-format tokens from the right; whatever is left is the name.
func decompose(tokens []string) Record {
	pop := func() string {
		if len(tokens) == 0 {
			return ""
		}
		last := tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
		return last
	}
	popPlate := func() string {
		if len(tokens) > 0 && IsPlate(tokens[len(tokens)-1]) {
			return pop()
		}
		return ""
	}

	var rec Record
	rec.Role = pop()
	rec.TrailerPlate = popPlate()
	rec.TractorPlate = popPlate()
	rec.RG = pop()
	rec.Name = strings.Join(tokens, " ")

	// a lone plate belongs to the tractor
	if rec.TractorPlate == "" && rec.TrailerPlate != "" {
		rec.TractorPlate, rec.TrailerPlate = rec.TrailerPlate, ""
	}
	return rec
}
