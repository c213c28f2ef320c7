package odf

import (
	"strings"
)

// Catalog keeps styles discovered during single conversion: named styles from
// styles part and automatic (inline) styles from content part.
type Catalog struct {
	defined map[string]string // style name -> display name
	inline  map[string]Rules  // automatic style name -> accumulated rules
	parents map[string]string // automatic style name -> parent display name

	// from default paragraph style text properties
	language string
	country  string
}

func newCatalog() *Catalog {
	return &Catalog{
		defined: make(map[string]string),
		inline:  make(map[string]Rules),
		parents: make(map[string]string),
	}
}

// Define registers named style.
func (c *Catalog) Define(name, display string) {
	c.defined[name] = display
}

// DisplayName returns display name of named style.
func (c *Catalog) DisplayName(name string) (string, bool) {
	d, ok := c.defined[name]
	return d, ok
}

// InlineRules returns rules accumulated for automatic style.
func (c *Catalog) InlineRules(name string) (Rules, bool) {
	r, ok := c.inline[name]
	return r, ok
}

// Language returns document default language and country as declared by the
// default paragraph style, either may be empty.
func (c *Catalog) Language() (string, string) {
	return c.language, c.country
}

// StyledTag renders opening tag for element styled by attribute key. Named
// styles become class, automatic styles become inline style with optional
// class of their parent.
func (c *Catalog) StyledTag(tag string, attrs Attrs, key string) string {
	name, ok := attrs.Get(key)
	if !ok {
		return "<" + tag + ">"
	}
	if display, ok := c.defined[name]; ok {
		return "<" + tag + ` class="` + display + `">`
	}
	if rules, ok := c.inline[name]; ok {
		style := strings.Join(rules, " ")
		if parent, ok := c.parents[name]; ok {
			return "<" + tag + ` class="` + parent + `" style="` + style + `">`
		}
		return "<" + tag + ` style="` + style + `">`
	}
	return "<" + tag + ">"
}
