package odf

import (
	"fmt"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Handler receives structural events of a single XML part in document order.
// Element and attribute names are qualified ("text:p", "style:name") exactly
// as they appear in the source.
type Handler interface {
	StartElement(name string, attrs Attrs) error
	EndElement(name string) error
	Characters(text string) error
}

// Parse reads XML part and drives handler with its events. Comments,
// processing instructions and directives are not reported. Any error returned
// by handler stops processing and is returned as is.
func Parse(data []byte, h Handler) error {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("unable to read XML: %w", err)
	}
	for _, tok := range doc.Child {
		if el, ok := tok.(*etree.Element); ok {
			if err := walk(el, h); err != nil {
				return err
			}
		}
	}
	return nil
}

func walk(el *etree.Element, h Handler) error {
	name := el.FullTag()

	attrs := make(Attrs, 0, len(el.Attr))
	for _, a := range el.Attr {
		attrs = append(attrs, Attr{Name: a.FullKey(), Value: a.Value})
	}
	if err := h.StartElement(name, attrs); err != nil {
		return err
	}

	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if err := walk(t, h); err != nil {
				return err
			}
		case *etree.CharData:
			if err := h.Characters(t.Data); err != nil {
				return err
			}
		}
	}
	return h.EndElement(name)
}
