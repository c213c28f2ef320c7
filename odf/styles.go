package odf

import (
	"fmt"
	"io"
	"strings"
)

// NewStylesParser returns handler for styles part. Every accepted named or
// default style is registered in catalog (named only) and written to w as a
// block: selector line, indented rule lines, closing line and blank line.
// Named styles with one of skipPrefixes are ignored together with their
// content.
func NewStylesParser(cat *Catalog, w io.Writer, skipPrefixes []string) *Stack {
	return NewStack(func(s *Stack, name string, _ Attrs) ContextParser {
		if name == "style:style" || name == "style:default-style" {
			return &styleContext{stack: s, cat: cat, w: w, skip: skipPrefixes}
		}
		return nil
	})
}

type styleContext struct {
	BaseContext

	stack *Stack
	cat   *Catalog
	w     io.Writer
	skip  []string

	defaultParagraph bool
}

func (c *styleContext) skipped(name string) bool {
	for _, p := range c.skip {
		if p != "" && strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func (c *styleContext) BeginContext(name string, attrs Attrs) error {
	switch name {
	case "style:style":
		styleName, err := attrs.Require(name, "style:name")
		if err != nil {
			return err
		}
		if c.skipped(styleName) {
			c.stack.PopContext()
			return nil
		}
		family, err := attrs.Require(name, "style:family")
		if err != nil {
			return err
		}
		display := styleName
		if v, ok := attrs.Get("style:display-name"); ok {
			display = v
		}
		if class, ok := attrs.Get("style:class"); ok {
			fmt.Fprintf(c.w, "%s:%s.\"%s\" {\n", family, class, display)
		} else {
			fmt.Fprintf(c.w, "%s.\"%s\" {\n", family, display)
		}
		c.cat.Define(styleName, display)

	case "style:default-style":
		family, err := attrs.Require(name, "style:family")
		if err != nil {
			return err
		}
		fmt.Fprintf(c.w, "%s {\n", family)
		c.defaultParagraph = family == "paragraph"

	default:
		// only named and default styles are handled here
		c.stack.PopContext()
	}
	return nil
}

func (c *styleContext) EndContext() error {
	_, err := io.WriteString(c.w, "}\n\n")
	return err
}

func (c *styleContext) StartElement(name string, attrs Attrs) error {
	if name == "style:tab-stops" {
		return c.stack.SetContext(&tabStopsContext{w: c.w})
	}
	if c.defaultParagraph && name == "style:text-properties" {
		c.cat.language, c.cat.country = attrs.Value("fo:language"), attrs.Value("fo:country")
	}
	rules, err := ExtractRules(name, attrs, nil)
	if err != nil {
		return err
	}
	for _, r := range rules {
		if _, err := io.WriteString(c.w, "  "+r+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// tabStopsContext collects tab stops and emits them as single rule.
type tabStopsContext struct {
	BaseContext

	w     io.Writer
	stops []string
}

func (c *tabStopsContext) StartElement(name string, attrs Attrs) error {
	if name != "style:tab-stop" {
		return nil
	}
	stop, err := tabStop(name, attrs)
	if err != nil {
		return err
	}
	c.stops = append(c.stops, stop)
	return nil
}

func (c *tabStopsContext) EndContext() error {
	if len(c.stops) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(c.w, "  tab-stops: %s;\n", strings.Join(c.stops, ", "))
	return err
}
