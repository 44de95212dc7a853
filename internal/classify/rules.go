package classify

import "strings"

// Predicate tests an uppercased header text.
type Predicate func(upper string) bool

// Contains matches when any marker is a substring of the header.
func Contains(markers ...string) Predicate {
	return func(upper string) bool {
		for _, m := range markers {
			if strings.Contains(upper, strings.ToUpper(m)) {
				return true
			}
		}
		return false
	}
}

func Not(p Predicate) Predicate {
	return func(upper string) bool { return !p(upper) }
}

func AllOf(ps ...Predicate) Predicate {
	return func(upper string) bool {
		for _, p := range ps {
			if !p(upper) {
				return false
			}
		}
		return true
	}
}

// Rule maps a header signature to a template variant.
type Rule struct {
	Name    string
	Match   Predicate
	Variant string
}

// Cascade evaluates rules top to bottom; the first match wins and Default
// applies when nothing matches.
type Cascade struct {
	Rules   []Rule
	Default string
}

// Select returns the chosen variant and the name of the rule that produced it
// ("default" for the fallback).
func (c Cascade) Select(header string) (variant, rule string) {
	upper := strings.ToUpper(header)
	for _, r := range c.Rules {
		if r.Match(upper) {
			return r.Variant, r.Name
		}
	}
	return c.Default, "default"
}
