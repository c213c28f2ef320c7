// Package css audits the style block produced for styled output. The block
// uses CSS-like syntax with selectors of the form family[:class]."Display
// Name" and is parsed with a regular CSS tokenizer.
package css

import (
	"fmt"
	"strings"
)

// Selector identifies style block.
type Selector struct {
	Raw    string
	Family string
	Class  string
	Name   string // empty for default style of the family
}

// IsDefault reports whether selector names default style of the family.
func (s Selector) IsDefault() bool {
	return s.Name == ""
}

func (s Selector) String() string {
	return s.Raw
}

// Value is a parsed declaration value.
type Value struct {
	Raw     string  // value as written, tokens separated by single space
	Value   float64 // numeric value for single number, percentage or dimension
	Unit    string
	Keyword string // identifier, string or color when value is a single token
}

// IsNumeric returns true when value was parsed from a single number.
func (v Value) IsNumeric() bool {
	return v.Keyword == "" && v.Raw != ""
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    Value
}

// Ruleset is selector with its declarations in source order.
type Ruleset struct {
	Selector     Selector
	Declarations []Declaration
}

// Get returns value of the first declaration of the property.
func (r *Ruleset) Get(property string) (Value, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return Value{}, false
}

// Stylesheet is parsed style block.
type Stylesheet struct {
	Rulesets []Ruleset
	Comments []string // comment bodies in source order
	Warnings []string
}

// Find returns ruleset of the named style or nil.
func (s *Stylesheet) Find(name string) *Ruleset {
	for i := range s.Rulesets {
		if s.Rulesets[i].Selector.Name == name {
			return &s.Rulesets[i]
		}
	}
	return nil
}

// Defaults returns rulesets of the default styles.
func (s *Stylesheet) Defaults() []Ruleset {
	var out []Ruleset
	for _, r := range s.Rulesets {
		if r.Selector.IsDefault() {
			out = append(out, r)
		}
	}
	return out
}

// Unhandled returns comments reporting unrecognized style properties or
// elements.
func (s *Stylesheet) Unhandled() []string {
	var out []string
	for _, c := range s.Comments {
		if strings.HasPrefix(c, "unhandled ") {
			out = append(out, c)
		}
	}
	return out
}

func (s *Stylesheet) addWarning(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}
