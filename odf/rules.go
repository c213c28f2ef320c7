package odf

import (
	"fmt"
	"strings"
)

// Rules is an ordered list of style declarations ("property: value;") and
// audit comments for attributes which were not recognized.
type Rules []string

const tabStopsNone = "tab-stops: none;"

type extractStep func(attrs Attrs) Rules

type propertyKind struct {
	steps      []extractStep
	recognized map[string]bool
	// text properties carry "-asian" and "-complex" variants of recognized
	// attributes, those are reported through language rules only
	skipVariants bool
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

var propertyKinds = map[string]*propertyKind{
	"style:paragraph-properties": {
		steps: []extractStep{
			rule("fo:background-color"),
			edgeRules("fo:border"),
			edgeRules("fo:margin"),
			edgeRules("fo:padding"),
			rule("style:contextual-spacing"),
			rule("fo:text-align"),
			rule("style:justify-single-word"),
			rule("fo:text-indent"),
			rule("style:auto-text-indent"),
			rule("style:punctuation-wrap"),
			rule("fo:hyphenation-ladder-count"),
			rule("style:line-break"),
			rule("fo:break-before"),
			rule("fo:keep-together"),
			rule("fo:keep-with-next"),
			rule("fo:orphans"),
			rule("fo:widows"),
			rule("style:tab-stop-distance"),
			rule("style:shadow"),
			rule("text:number-lines"),
			rule("text:line-number"),
			rule("style:page-number"),
		},
		recognized: setOf(
			"fo:background-color",
			"fo:border", "fo:border-bottom", "fo:border-left", "fo:border-right", "fo:border-top",
			"fo:break-before",
			"fo:hyphenation-ladder-count",
			"fo:keep-together",
			"fo:keep-with-next",
			"fo:margin", "fo:margin-bottom", "fo:margin-left", "fo:margin-right", "fo:margin-top",
			"fo:orphans",
			"fo:padding", "fo:padding-bottom", "fo:padding-left", "fo:padding-right", "fo:padding-top",
			"fo:text-align",
			"fo:text-indent",
			"fo:widows",
			"style:auto-text-indent",
			"style:contextual-spacing",
			"style:font-independent-line-spacing", // silent
			"style:justify-single-word",
			"style:line-break",
			"style:page-number",
			"style:punctuation-wrap",
			"style:shadow",
			"style:tab-stop-distance",
			"style:text-autospace", // silent
			"style:writing-mode",   // silent
			"text:line-number",
			"text:number-lines",
		),
	},
	"style:text-properties": {
		steps: []extractStep{
			rule("fo:background-color"),
			rule("fo:color"),
			windowFontColorRule,
			langRules("style:font-name"),
			langRules("fo:font-size"),
			langRules("fo:font-style"),
			langRules("fo:font-weight"),
			underlineRule,
			rule("fo:text-shadow"),
			renamedRule("style:font-relief", "text-relief"),
			hyphenateRule,
			langRules("style:letter-kerning"),
		},
		recognized: setOf(
			"fo:background-color",
			"fo:color",
			"fo:country", // silent
			"fo:font-size",
			"fo:font-style",
			"fo:font-weight",
			"fo:hyphenate",
			"fo:hyphenation-push-char-count",
			"fo:hyphenation-remain-char-count",
			"fo:language", // silent
			"fo:text-shadow",
			"officeooo:paragraph-rsid", // silent
			"officeooo:rsid",           // silent
			"style:font-name",
			"style:font-relief",
			"style:letter-kerning",
			"style:text-underline-color",
			"style:text-underline-style",
			"style:text-underline-width",
			"style:use-window-font-color",
		),
		skipVariants: true,
	},
	"style:table-cell-properties": {
		steps: []extractStep{
			rule("fo:background-color"),
			rule("style:shadow"),
			edgeRules("fo:border"),
			edgeRules("fo:padding"),
		},
		recognized: setOf(
			"fo:background-color",
			"fo:border", "fo:border-bottom", "fo:border-left", "fo:border-right", "fo:border-top",
			"fo:padding", "fo:padding-bottom", "fo:padding-left", "fo:padding-right", "fo:padding-top",
			"style:shadow",
		),
	},
	"style:table-row-properties": {
		steps: []extractStep{
			rule("fo:background-color"),
			renamedRule("style:row-height", "height"),
			renamedRule("style:min-row-height", "min-height"),
			renamedRule("style:use-optimal-row-height", "optimal-height"),
			rule("fo:break-before"),
			rule("fo:break-after"),
			rule("fo:keep-together"),
		},
		recognized: setOf(
			"fo:background-color",
			"fo:break-after",
			"fo:break-before",
			"fo:keep-together",
			"style:min-row-height",
			"style:row-height",
			"style:use-optimal-row-height",
		),
	},
	"style:table-column-properties": {
		steps: []extractStep{
			renamedRule("style:column-width", "width"),
			renamedRule("style:rel-column-width", "rel-width"),
			renamedRule("style:use-optimal-column-width", "optimal-width"),
			rule("fo:break-before"),
			rule("fo:break-after"),
		},
		recognized: setOf(
			"fo:break-after",
			"fo:break-before",
			"style:column-width",
			"style:rel-column-width",
			"style:use-optimal-column-width",
		),
	},
}

// ExtractRules appends rules derived from style property element to rules
// and returns resulting list. Order of produced rules does not depend on
// attribute order. "style:tab-stop" rewrites previously appended tab-stops
// rule in place.
func ExtractRules(name string, attrs Attrs, rules Rules) (Rules, error) {
	switch name {
	case "style:tab-stops":
		return append(rules, tabStopsNone), nil
	case "style:tab-stop":
		stop, err := tabStop(name, attrs)
		if err != nil {
			return rules, err
		}
		for i, r := range rules {
			if !strings.HasPrefix(r, "tab-stops:") {
				continue
			}
			if r == tabStopsNone {
				rules[i] = "tab-stops: " + stop + ";"
			} else {
				rules[i] = strings.TrimSuffix(r, ";") + ", " + stop + ";"
			}
			break
		}
		return rules, nil
	}

	kind, ok := propertyKinds[name]
	if !ok {
		return append(rules, fmt.Sprintf("/* unhandled tag '%s' */", name)), nil
	}
	for _, step := range kind.steps {
		rules = append(rules, step(attrs)...)
	}
	short := strings.TrimPrefix(name, "style:")
	for _, a := range attrs {
		if kind.skipVariants && (strings.HasSuffix(a.Name, "-asian") || strings.HasSuffix(a.Name, "-complex")) {
			continue
		}
		if !kind.recognized[a.Name] {
			rules = append(rules, fmt.Sprintf("/* unhandled %s attribute '%s' */", short, a.Name))
		}
	}
	return rules, nil
}

// tabStop formats single tab stop as "position [type]".
func tabStop(name string, attrs Attrs) (string, error) {
	pos, err := attrs.Require(name, "style:position")
	if err != nil {
		return "", err
	}
	if typ, ok := attrs.Get("style:type"); ok {
		pos += " " + typ
	}
	return pos, nil
}

func localName(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}

func declaration(property, value string) string {
	return property + ": " + value + ";"
}

func rule(key string) extractStep {
	return renamedRule(key, localName(key))
}

func renamedRule(key, property string) extractStep {
	return func(attrs Attrs) Rules {
		if v, ok := attrs.Get(key); ok {
			return Rules{declaration(property, v)}
		}
		return nil
	}
}

// edgeRules expands box property into shorthand and per-edge rules.
func edgeRules(key string) extractStep {
	property := localName(key)
	steps := []extractStep{
		renamedRule(key, property),
		renamedRule(key+"-top", property+"-top"),
		renamedRule(key+"-left", property+"-left"),
		renamedRule(key+"-right", property+"-right"),
		renamedRule(key+"-bottom", property+"-bottom"),
	}
	return func(attrs Attrs) Rules {
		var out Rules
		for _, step := range steps {
			out = append(out, step(attrs)...)
		}
		return out
	}
}

// langRules emits common value followed by "-asian" and "-complex" variants
// when they differ from it.
func langRules(key string) extractStep {
	property := localName(key)
	return func(attrs Attrs) Rules {
		common, ok := attrs.Get(key)
		if !ok {
			return nil
		}
		out := Rules{declaration(property, common)}
		for _, variant := range []string{"-asian", "-complex"} {
			if v, ok := attrs.Get(key + variant); ok && v != common {
				out = append(out, declaration(property+variant, v))
			}
		}
		return out
	}
}

func windowFontColorRule(attrs Attrs) Rules {
	if attrs.Has("style:use-window-font-color") {
		return Rules{"font-color: window;"}
	}
	return nil
}

func underlineRule(attrs Attrs) Rules {
	style, ok := attrs.Get("style:text-underline-style")
	if !ok {
		return nil
	}
	if v, ok := attrs.Get("style:text-underline-width"); ok {
		style += " " + v
	}
	if v, ok := attrs.Get("style:text-underline-color"); ok {
		style += " " + v
	}
	return Rules{declaration("text-underline", style)}
}

func hyphenateRule(attrs Attrs) Rules {
	text, ok := attrs.Get("fo:hyphenate")
	if !ok {
		return nil
	}
	remain, haveRemain := attrs.Get("fo:hyphenation-remain-char-count")
	if push, ok := attrs.Get("fo:hyphenation-push-char-count"); ok {
		text += " " + push
	} else if haveRemain {
		text += " auto"
	}
	if haveRemain {
		text += " " + remain
	}
	return Rules{declaration("hyphenate", text)}
}
