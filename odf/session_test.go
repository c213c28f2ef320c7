package odf

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"odfc/content/text"
)

func testDocument() *Document {
	return &Document{
		Name:     "test.odt",
		MimeType: "application/vnd.oasis.opendocument.text",
		Styles:   stylesXML(testStyles),
		Content:  contentXML(testAutomatic, `<text:p text:style-name="Quote">Over. And out.</text:p>`),
	}
}

func TestSessionConvert(t *testing.T) {
	log := zaptest.NewLogger(t)
	doc := testDocument()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "plain",
			opts: Options{},
			want: "Over. And out.\n\n",
		},
		{
			name: "plain sentences",
			opts: Options{BreakSentences: true},
			want: "Over.\nAnd out.\n\n",
		},
		{
			name: "styled",
			opts: Options{Style: true, SkipStylePrefixes: []string{"WW8Num"}},
			want: testStyleBlock + "<p class=\"Quotation\">Over. And out.</p>\n\n",
		},
		{
			name: "styled sentences",
			opts: Options{Style: true, BreakSentences: true, SkipStylePrefixes: []string{"WW8Num"}},
			want: testStyleBlock + "<p class=\"Quotation\">Over.\nAnd out.</p>\n\n",
		},
		{
			name: "raw",
			opts: Options{Raw: true, BreakSentences: true},
			want: string(doc.Content) + "\n",
		},
		{
			name: "raw with styles",
			opts: Options{Raw: true, Style: true},
			want: string(doc.Styles) + "\n" + string(doc.Content) + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewSession(tt.opts, log).Convert(doc)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("Convert() =\n%q\nwant\n%q", out, tt.want)
			}
		})
	}
}

func TestSessionStyleBlock(t *testing.T) {
	s := NewSession(Options{Style: true, SkipStylePrefixes: []string{"WW8Num"}}, zaptest.NewLogger(t))
	out, err := s.Convert(testDocument())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got := string(s.StyleBlock(out)); got != testStyleBlock {
		t.Errorf("StyleBlock() = %q, want %q", got, testStyleBlock)
	}
	if _, ok := s.Catalog().DisplayName("Quote"); !ok {
		t.Error("catalog should hold styles of converted document")
	}

	plain := NewSession(Options{}, zaptest.NewLogger(t))
	out, err = plain.Convert(testDocument())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(plain.StyleBlock(out)) != 0 {
		t.Errorf("StyleBlock() = %q, want empty", plain.StyleBlock(out))
	}
}

func TestSessionReuse(t *testing.T) {
	s := NewSession(Options{Style: true}, zaptest.NewLogger(t))
	first, err := s.Convert(testDocument())
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Convert(testDocument())
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("repeated conversion differs:\n%q\n%q", first, second)
	}
}

func TestSessionErrors(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("styles required", func(t *testing.T) {
		doc := testDocument()
		doc.Styles = nil
		out, err := NewSession(Options{Style: true}, log).Convert(doc)
		if !errors.Is(err, ErrMissingPart) {
			t.Errorf("Convert() error = %v, want %v", err, ErrMissingPart)
		}
		if out != nil {
			t.Errorf("Convert() output = %q, want nil", out)
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		doc := testDocument()
		doc.Content = []byte(`<office:document-content><text:p a=b>x</text:p></office:document-content>`)
		out, err := NewSession(Options{}, log).Convert(doc)
		if err == nil {
			t.Error("Convert() expected error for malformed content")
		}
		if out != nil {
			t.Errorf("Convert() output = %q, want nil", out)
		}
	})

	t.Run("missing attribute", func(t *testing.T) {
		doc := testDocument()
		doc.Styles = stylesXML(`<style:style style:family="paragraph"/>`)
		_, err := NewSession(Options{Style: true}, log).Convert(doc)
		if !errors.Is(err, ErrMissingAttribute) {
			t.Errorf("Convert() error = %v, want %v", err, ErrMissingAttribute)
		}
		if err != nil && !strings.Contains(err.Error(), PartStyles) {
			t.Errorf("error %q does not name the part", err)
		}
	})
}

func TestSessionSegmenter(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("off", func(t *testing.T) {
		if seg := NewSession(Options{}, log).segmenter(); seg != nil {
			t.Errorf("segmenter() = %T, want nil", seg)
		}
	})

	t.Run("heuristic", func(t *testing.T) {
		seg := NewSession(Options{BreakSentences: true, Punkt: false}, log).segmenter()
		if _, ok := seg.(*text.Breaker); !ok {
			t.Errorf("segmenter() = %T, want *text.Breaker", seg)
		}
	})

	t.Run("punkt for document language", func(t *testing.T) {
		s := NewSession(Options{BreakSentences: true, Punkt: true}, log)
		s.cat.language, s.cat.country = "en", "GB"
		if _, ok := s.segmenter().(*text.Splitter); !ok {
			t.Errorf("segmenter() = %T, want *text.Splitter", s.segmenter())
		}
	})

	t.Run("punkt falls back", func(t *testing.T) {
		s := NewSession(Options{BreakSentences: true, Punkt: true}, log)
		s.cat.language = "ru"
		if _, ok := s.segmenter().(*text.Breaker); !ok {
			t.Errorf("segmenter() = %T, want *text.Breaker", s.segmenter())
		}
	})
}

func TestSessionLanguage(t *testing.T) {
	log := zaptest.NewLogger(t)

	tests := []struct {
		name     string
		option   string
		language string
		country  string
		want     language.Tag
	}{
		{"default", "", "", "", language.English},
		{"document", "", "de", "DE", language.MustParse("de-DE")},
		{"document without country", "", "fr", "", language.French},
		{"configured", "ru", "de", "DE", language.Russian},
		{"invalid", "not a language", "", "", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(Options{Language: tt.option}, log)
			s.cat.language, s.cat.country = tt.language, tt.country
			if got := s.language(); got != tt.want {
				t.Errorf("language() = %v, want %v", got, tt.want)
			}
		})
	}
}
