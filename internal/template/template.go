// Package template loads the per-family region layouts (field name -> rectangle).
package template

import (
	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/region"
)

// ID names one layout: a family plus one of its variants.
type ID struct {
	Family  constants.DocType
	Variant string
}

func (id ID) String() string {
	return id.Family.Dir() + "/" + id.Variant
}

// HeaderID is the layout holding the family's classification region.
func HeaderID(family constants.DocType) ID {
	return ID{Family: family, Variant: constants.HeaderTemplate}
}

type Field struct {
	Name string
	Rect region.Rect
}

// Template is an immutable, ordered list of named regions.
type Template struct {
	ID     ID
	Fields []Field
}

// Field looks up a region by name.
func (t *Template) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the field names in definition order.
func (t *Template) Names() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}
