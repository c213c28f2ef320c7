package odf

import (
	"io"
	"strings"
)

// Segmenter rewrites run of text before it is written out.
type Segmenter interface {
	Segment(text string) string
}

// runBuffer accumulates running text between structural boundaries.
type runBuffer struct {
	w    io.Writer
	seg  Segmenter // nil when sentences are not broken
	text strings.Builder
}

func (b *runBuffer) add(s string) {
	b.text.WriteString(s)
}

// reset replaces pending text without writing it.
func (b *runBuffer) reset(s string) {
	b.text.Reset()
	b.text.WriteString(s)
}

// flush appends tail to pending text and writes it out, segmenting when
// requested.
func (b *runBuffer) flush(tail string) error {
	b.text.WriteString(tail)
	if b.text.Len() == 0 {
		return nil
	}
	content := b.text.String()
	b.text.Reset()
	if b.seg != nil {
		content = b.seg.Segment(content)
	}
	_, err := io.WriteString(b.w, content)
	return err
}

// write flushes pending text and writes s as is.
func (b *runBuffer) write(s string) error {
	if err := b.flush(""); err != nil {
		return err
	}
	_, err := io.WriteString(b.w, s)
	return err
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}
