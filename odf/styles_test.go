package odf

import (
	"errors"
	"strings"
	"testing"
)

func TestStylesParser(t *testing.T) {
	cat := newCatalog()
	var out strings.Builder

	if err := Parse(stylesXML(testStyles), NewStylesParser(cat, &out, []string{"WW8Num"})); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := out.String(); got != testStyleBlock {
		t.Errorf("style block =\n%s\nwant\n%s", got, testStyleBlock)
	}

	for name, want := range map[string]string{
		"Standard":     "Standard",
		"Body":         "Body",
		"Quote":        "Quotation",
		"Heading_20_1": "Heading 1",
	} {
		if got, ok := cat.DisplayName(name); !ok || got != want {
			t.Errorf("DisplayName(%q) = %q, %v, want %q", name, got, ok, want)
		}
	}
	if _, ok := cat.DisplayName("WW8Num1z0"); ok {
		t.Error("skipped style should not be registered")
	}
	if l, c := cat.Language(); l != "en" || c != "US" {
		t.Errorf("Language() = %q, %q, want en, US", l, c)
	}
}

func TestStylesParserBorderRule(t *testing.T) {
	cat := newCatalog()
	var out strings.Builder

	styles := `<style:style style:name="Body" style:family="paragraph">` +
		`<style:paragraph-properties fo:border-top="0.02in solid #000000"/></style:style>`
	if err := Parse(stylesXML(styles), NewStylesParser(cat, &out, nil)); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "paragraph.\"Body\" {\n  border-top: 0.02in solid #000000;\n}\n\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStylesParserEmptyTabStops(t *testing.T) {
	cat := newCatalog()
	var out strings.Builder

	styles := `<style:style style:name="P" style:family="paragraph">` +
		`<style:paragraph-properties><style:tab-stops/></style:paragraph-properties>` +
		`<style:graphic-properties/></style:style>`
	if err := Parse(stylesXML(styles), NewStylesParser(cat, &out, nil)); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "paragraph.\"P\" {\n  /* unhandled tag 'style:graphic-properties' */\n}\n\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStylesParserMissingAttributes(t *testing.T) {
	tests := []struct {
		name   string
		styles string
	}{
		{"style name", `<style:style style:family="paragraph"/>`},
		{"style family", `<style:style style:name="P"/>`},
		{"default family", `<style:default-style/>`},
		{"tab position", `<style:style style:name="P" style:family="paragraph"><style:paragraph-properties>` +
			`<style:tab-stops><style:tab-stop style:type="left"/></style:tab-stops></style:paragraph-properties></style:style>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := Parse(stylesXML(tt.styles), NewStylesParser(newCatalog(), &out, nil))
			if !errors.Is(err, ErrMissingAttribute) {
				t.Errorf("Parse() error = %v, want %v", err, ErrMissingAttribute)
			}
		})
	}
}

func TestStylesParserLiteralDisplayName(t *testing.T) {
	cat := newCatalog()
	var out strings.Builder

	styles := `<style:style style:name="Say" style:display-name="Say &quot;hi&quot; \ now" style:family="paragraph"/>`
	if err := Parse(stylesXML(styles), NewStylesParser(cat, &out, nil)); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "paragraph.\"Say \"hi\" \\ now\" {\n}\n\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
