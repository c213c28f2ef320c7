package odf

import (
	"errors"
	"fmt"
	"strings"

	"odfc/archive"
)

// Names of the document container parts.
const (
	PartMimeType = "mimetype"
	PartStyles   = "styles.xml"
	PartContent  = "content.xml"
)

// MimeTypePrefix is common prefix of all OpenDocument media types.
const MimeTypePrefix = "application/vnd.oasis.opendocument."

// ErrMissingPart is returned when required part is absent from container.
var ErrMissingPart = errors.New("missing document part")

// Document holds parts of a single container needed for conversion.
type Document struct {
	Name     string
	MimeType string
	Styles   []byte // nil unless requested
	Content  []byte
}

// Open reads document container. Content part is always required, styles part
// only when withStyles is set.
func Open(path string, withStyles bool) (*Document, error) {
	names := []string{PartMimeType, PartContent}
	if withStyles {
		names = append(names, PartStyles)
	}

	parts, err := archive.ReadParts(path, names...)
	if err != nil {
		return nil, fmt.Errorf("unable to read document container: %w", err)
	}

	doc := &Document{
		Name:     path,
		MimeType: strings.TrimSpace(string(parts[PartMimeType])),
		Styles:   parts[PartStyles],
		Content:  parts[PartContent],
	}
	if doc.Content == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, PartContent)
	}
	if withStyles && doc.Styles == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, PartStyles)
	}
	return doc, nil
}

// IsOpenDocument reports whether declared media type belongs to OpenDocument
// family. Containers without mimetype part are not rejected.
func (d *Document) IsOpenDocument() bool {
	return d.MimeType == "" || strings.HasPrefix(d.MimeType, MimeTypePrefix)
}
