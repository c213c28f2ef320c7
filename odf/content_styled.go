package odf

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

var recognizedContentTags = map[string]bool{
	"office:forms":         true,
	"office:text":          true,
	"table:table":          true,
	"table:table-cell":     true,
	"table:table-column":   true,
	"table:table-row":      true,
	"text:h":               true,
	"text:line-break":      true,
	"text:list":            true,
	"text:list-item":       true,
	"text:p":               true,
	"text:s":               true,
	"text:sequence-decl":   true,
	"text:sequence-decls":  true,
	"text:soft-page-break": true,
	"text:span":            true,
	"text:tab":             true,
}

// openElement is a frame of the open element stack, closing text is decided
// when element opens.
type openElement struct {
	name    string
	closing string
	hasEnd  bool
	spaces  int
}

// StyledContent renders content part as simplified markup resolving styles
// against catalog. Automatic styles declared in content part are collected
// into the same catalog before body is reached.
type StyledContent struct {
	cat          *Catalog
	defaultStyle string

	out   runBuffer
	level int
	open  []openElement

	inBody  bool
	inStyle string // automatic style being collected, empty outside

	// list item is rendered using attributes of its first child
	pendingItem bool
}

// NewStyledContent creates renderer writing into w. Paragraphs styled with
// defaultStyle are rendered without markup. When seg is not nil running text
// is passed through it before being written.
func NewStyledContent(cat *Catalog, w io.Writer, seg Segmenter, defaultStyle string) *StyledContent {
	return &StyledContent{
		cat:          cat,
		defaultStyle: defaultStyle,
		out:          runBuffer{w: w, seg: seg},
	}
}

// IndentLevel returns current nesting level of lists, tables and rows.
func (c *StyledContent) IndentLevel() int {
	return c.level
}

// parent returns name of the element enclosing innermost open element.
func (c *StyledContent) parent() string {
	if len(c.open) < 2 {
		return ""
	}
	return c.open[len(c.open)-2].name
}

func (c *StyledContent) StartElement(name string, attrs Attrs) error {
	c.open = append(c.open, openElement{name: name})
	el := &c.open[len(c.open)-1]

	switch {
	case name == "office:body":
		c.inBody = true
		c.pendingItem = false

	case c.inStyle != "":
		rules, err := ExtractRules(name, attrs, c.cat.inline[c.inStyle])
		c.cat.inline[c.inStyle] = rules
		return err

	case c.inBody:
		if err := c.out.flush(""); err != nil {
			return err
		}
		return c.startBodyElement(el, name, attrs)

	case name == "style:style":
		styleName, err := attrs.Require(name, "style:name")
		if err != nil {
			return err
		}
		c.inStyle = styleName
		c.cat.inline[styleName] = Rules{}
		if parent, ok := attrs.Get("style:parent-style-name"); ok && parent != c.defaultStyle {
			if display, ok := c.cat.defined[parent]; ok {
				c.cat.parents[styleName] = display
			}
		}
	}
	return nil
}

func (c *StyledContent) closeWith(el *openElement, text string) {
	el.closing, el.hasEnd = text, true
}

func (c *StyledContent) startBodyElement(el *openElement, name string, attrs Attrs) error {
	if c.pendingItem {
		c.pendingItem = false
		c.closeWith(el, "</li>\n")
		return c.out.write(indent(c.level) + c.cat.StyledTag("li", attrs, "text:style-name"))
	}

	switch name {
	case "text:p":
		style, ok := attrs.Get("text:style-name")
		if !ok || style == c.defaultStyle {
			return nil
		}
		if c.parent() == "table:table-cell" {
			c.closeWith(el, "</p>")
		} else {
			c.closeWith(el, "</p>\n\n")
		}
		return c.out.write(c.cat.StyledTag("p", attrs, "text:style-name"))

	case "text:h":
		level, err := attrs.Require(name, "text:outline-level")
		if err != nil {
			return err
		}
		tag := "h" + level
		c.closeWith(el, "</"+tag+">\n\n")
		return c.out.write(c.cat.StyledTag(tag, attrs, "text:style-name"))

	case "text:list":
		err := c.out.write("\n" + indent(c.level) + c.cat.StyledTag("list", attrs, "text:style-name") + "\n")
		c.level++
		return err

	case "text:list-item":
		c.pendingItem = true

	case "text:span":
		c.closeWith(el, "</span>")
		return c.out.write(c.cat.StyledTag("span", attrs, "text:style-name"))

	case "table:table":
		err := c.out.write(c.cat.StyledTag("table", attrs, "table:style-name") + "\n")
		c.level++
		return err

	case "table:table-column":
		c.closeWith(el, "</tc>\n")
		return c.out.write(indent(c.level) + c.cat.StyledTag("tc", attrs, "table:style-name"))

	case "table:table-row":
		err := c.out.write(indent(c.level) + c.cat.StyledTag("tr", attrs, "table:style-name"))
		c.level++
		return err

	case "table:table-cell":
		c.closeWith(el, "</td>")
		return c.out.write("\n" + indent(c.level) + c.cat.StyledTag("td", attrs, "table:style-name"))

	case "text:s":
		el.spaces = spaceCount(attrs)

	default:
		if !recognizedContentTags[name] {
			return c.out.write(unhandledTag(name, attrs) + "\n")
		}
	}
	return nil
}

func (c *StyledContent) EndElement(name string) error {
	if len(c.open) == 0 {
		return nil
	}
	el := c.open[len(c.open)-1]
	c.open = c.open[:len(c.open)-1]

	var err error
	switch {
	case el.hasEnd:
		err = c.out.flush(el.closing)

	case name == "text:p":
		if err = c.out.flush(""); err == nil && c.innermost() != "table:table-cell" {
			err = c.out.write("\n\n")
		}

	case name == "text:s":
		err = c.out.flush(strings.Repeat("&nbsp;", max(el.spaces, 1)))

	case name == "text:tab":
		err = c.out.flush("\t")

	case name == "text:line-break":
		err = c.out.flush("<br/>\n")
		c.out.reset(indent(c.level))

	case name == "text:list":
		c.dedent()
		err = c.out.flush("\n")
		c.out.reset(indent(c.level) + "</list>")

	case name == "table:table":
		c.dedent()
		err = c.out.write("\n</table>\n")

	case name == "table:table-row":
		c.dedent()
		err = c.out.write("\n" + indent(c.level) + "</tr>\n")

	case name == "style:style":
		c.inStyle = ""
	}
	if err != nil {
		return err
	}

	if name == "office:body" {
		c.inBody = false
		return c.out.flush("")
	}
	return nil
}

func (c *StyledContent) Characters(text string) error {
	if !c.inBody {
		return nil
	}
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	c.out.add(text)
	if strings.Contains(text, "\n") {
		return c.out.flush("")
	}
	return nil
}

// innermost returns name of innermost open element.
func (c *StyledContent) innermost() string {
	if len(c.open) == 0 {
		return ""
	}
	return c.open[len(c.open)-1].name
}

func (c *StyledContent) dedent() {
	if c.level > 0 {
		c.level--
	}
}

// maxSpaceCount caps text:c so a single element cannot exhaust memory.
const maxSpaceCount = 4096

// spaceCount returns number of spaces represented by text:s element.
func spaceCount(attrs Attrs) int {
	if v, ok := attrs.Get("text:c"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return maxSpaceCount
		}
		if err == nil && n > 0 {
			return int(min(n, maxSpaceCount))
		}
	}
	return 1
}

func unhandledTag(name string, attrs Attrs) string {
	var b strings.Builder
	b.WriteString("<!-- unhandled: <")
	b.WriteString(name)
	for _, a := range attrs {
		b.WriteString(" " + a.Name + `="` + a.Value + `"`)
	}
	b.WriteString("> -->")
	return b.String()
}
