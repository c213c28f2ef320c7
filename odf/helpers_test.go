package odf

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

const namespaces = `xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
	` xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"` +
	` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
	` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"` +
	` xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"`

func stylesXML(styles string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<office:document-styles ` + namespaces + `><office:styles>` + styles +
		`</office:styles></office:document-styles>`)
}

func contentXML(automatic, body string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<office:document-content ` + namespaces + `>` +
		`<office:automatic-styles>` + automatic + `</office:automatic-styles>` +
		`<office:body><office:text>` + body + `</office:text></office:body>` +
		`</office:document-content>`)
}

// makeDocument writes zip container with provided parts and returns its path.
func makeDocument(t *testing.T, parts map[string][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.odt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create document: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range []string{PartMimeType, PartStyles, PartContent} {
		data, ok := parts[name]
		if !ok {
			continue
		}
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish document: %v", err)
	}
	return path
}

const testStyles = `<style:default-style style:family="paragraph">` +
	`<style:paragraph-properties style:tab-stop-distance="0.49in"/>` +
	`<style:text-properties style:font-name="Liberation Serif" fo:language="en" fo:country="US"/>` +
	`</style:default-style>` +
	`<style:style style:name="Standard" style:family="paragraph" style:class="text"/>` +
	`<style:style style:name="Body" style:family="paragraph">` +
	`<style:paragraph-properties fo:border-top="0.02in solid #000000"/>` +
	`</style:style>` +
	`<style:style style:name="Quote" style:display-name="Quotation" style:family="paragraph" style:class="html">` +
	`<style:paragraph-properties><style:tab-stops>` +
	`<style:tab-stop style:position="1in"/><style:tab-stop style:position="2in" style:type="right"/>` +
	`</style:tab-stops></style:paragraph-properties>` +
	`</style:style>` +
	`<style:style style:name="Heading_20_1" style:display-name="Heading 1" style:family="paragraph"/>` +
	`<style:style style:name="WW8Num1z0" style:family="text"><style:text-properties fo:color="#ff0000"/></style:style>`

const testStyleBlock = "paragraph {\n" +
	"  tab-stop-distance: 0.49in;\n" +
	"  font-name: Liberation Serif;\n" +
	"}\n\n" +
	"paragraph:text.\"Standard\" {\n" +
	"}\n\n" +
	"paragraph.\"Body\" {\n" +
	"  border-top: 0.02in solid #000000;\n" +
	"}\n\n" +
	"paragraph:html.\"Quotation\" {\n" +
	"  tab-stops: 1in, 2in right;\n" +
	"}\n\n" +
	"paragraph.\"Heading 1\" {\n" +
	"}\n\n"
