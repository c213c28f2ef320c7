// Package odf converts OpenDocument parts into flat text or simplified
// markup. It holds the event source, the context stack engine, style rule
// extraction, the style catalog builder and the content renderers.
package odf

import (
	"errors"
	"fmt"
)

// ErrMissingAttribute is returned when a recognized element lacks an
// attribute its identity depends on.
var ErrMissingAttribute = errors.New("missing required attribute")

// Attr is a single attribute with its qualified name ("prefix:local").
type Attr struct {
	Name  string
	Value string
}

// Attrs keeps element attributes in document order.
type Attrs []Attr

// Get returns attribute value and whether attribute was present.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Value returns attribute value or empty string.
func (a Attrs) Value(name string) string {
	v, _ := a.Get(name)
	return v
}

func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Require returns attribute value or ErrMissingAttribute naming element and
// attribute.
func (a Attrs) Require(element, name string) (string, error) {
	if v, ok := a.Get(name); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: <%s> has no '%s'", ErrMissingAttribute, element, name)
}
