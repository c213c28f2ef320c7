package odf

import (
	"io"
	"strings"
)

// SimpleContent renders content part as flat text: paragraphs separated by
// blank lines, list items marked with "*" and indented by nesting level.
type SimpleContent struct {
	out    runBuffer
	level  int
	inBody bool
	spaces int // pending text:s count
}

// NewSimpleContent creates renderer writing into w. When seg is not nil
// running text is passed through it before being written.
func NewSimpleContent(w io.Writer, seg Segmenter) *SimpleContent {
	return &SimpleContent{out: runBuffer{w: w, seg: seg}}
}

// IndentLevel returns current list nesting level.
func (c *SimpleContent) IndentLevel() int {
	return c.level
}

func (c *SimpleContent) StartElement(name string, attrs Attrs) error {
	switch name {
	case "office:body":
		c.inBody = true
	case "text:s":
		c.spaces = spaceCount(attrs)
	case "text:list":
		c.level++
	case "text:list-item":
		return c.out.write("\n" + indent(c.level) + "* ")
	}
	return nil
}

func (c *SimpleContent) EndElement(name string) error {
	switch name {
	case "office:body":
		c.inBody = false
		return c.out.flush("")
	case "text:p", "text:h":
		return c.out.write("\n\n")
	case "text:list":
		c.level--
		return c.out.write("\n\n")
	case "text:s":
		c.out.add(strings.Repeat(" ", max(c.spaces, 1)))
		c.spaces = 0
	case "text:tab":
		c.out.add("\t")
	case "text:line-break":
		c.out.add("\n" + indent(c.level))
	}
	return nil
}

func (c *SimpleContent) Characters(text string) error {
	if c.inBody {
		c.out.add(text)
	}
	return nil
}
