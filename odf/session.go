package odf

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"odfc/content/text"
)

// DefaultStyleName is paragraph style rendered without markup unless
// configured otherwise.
const DefaultStyleName = "Standard"

// Options select rendering path and flush behavior, toggles are independent.
type Options struct {
	Raw            bool // pass parts through as is
	Style          bool // emit style block and styled markup
	BreakSentences bool

	// Punkt selects model based sentence splitter, heuristic breaker is used
	// otherwise and as a fallback.
	Punkt bool
	// Language overrides document language for the splitter.
	Language      string
	Abbreviations []string

	DefaultStyle      string
	SkipStylePrefixes []string
}

// Session converts single document. All state discovered during conversion
// is owned by the session.
type Session struct {
	opts Options
	log  *zap.Logger

	cat        *Catalog
	styleBlock int // length of style block in the last output
}

// NewSession creates conversion session.
func NewSession(opts Options, log *zap.Logger) *Session {
	if opts.DefaultStyle == "" {
		opts.DefaultStyle = DefaultStyleName
	}
	return &Session{opts: opts, log: log, cat: newCatalog()}
}

// Catalog returns styles discovered by the last conversion.
func (s *Session) Catalog() *Catalog {
	return s.cat
}

// StyleBlock returns style block part of converted output, empty unless
// styled markup was produced.
func (s *Session) StyleBlock(out []byte) []byte {
	if s.styleBlock > len(out) {
		return nil
	}
	return out[:s.styleBlock]
}

// Convert renders document according to session options. Nothing is returned
// on error.
func (s *Session) Convert(doc *Document) ([]byte, error) {
	s.cat, s.styleBlock = newCatalog(), 0

	if s.opts.Style && doc.Styles == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, PartStyles)
	}

	var (
		out   bytes.Buffer
		level func() int
	)
	switch {
	case s.opts.Raw:
		if s.opts.Style {
			out.Write(doc.Styles)
			out.WriteByte('\n')
		}
		out.Write(doc.Content)
		out.WriteByte('\n')
		return out.Bytes(), nil

	case s.opts.Style:
		if err := Parse(doc.Styles, NewStylesParser(s.cat, &out, s.opts.SkipStylePrefixes)); err != nil {
			return nil, fmt.Errorf("unable to process %s: %w", PartStyles, err)
		}
		s.styleBlock = out.Len()

		r := NewStyledContent(s.cat, &out, s.segmenter(), s.opts.DefaultStyle)
		if err := Parse(doc.Content, r); err != nil {
			return nil, fmt.Errorf("unable to process %s: %w", PartContent, err)
		}
		level = r.IndentLevel

	default:
		r := NewSimpleContent(&out, s.segmenter())
		if err := Parse(doc.Content, r); err != nil {
			return nil, fmt.Errorf("unable to process %s: %w", PartContent, err)
		}
		level = r.IndentLevel
	}

	if l := level(); l != 0 {
		s.log.Debug("Unbalanced indentation at the end of content", zap.Int("level", l))
	}
	return out.Bytes(), nil
}

func (s *Session) segmenter() Segmenter {
	if !s.opts.BreakSentences {
		return nil
	}
	if s.opts.Punkt {
		if sp := text.NewSplitter(s.language(), s.log); sp != nil {
			return sp
		}
		s.log.Warn("Using heuristic sentence breaker instead")
	}
	return text.NewBreaker(s.opts.Abbreviations)
}

// language returns configured language or document default one, English when
// neither is known.
func (s *Session) language() language.Tag {
	lang := s.opts.Language
	if lang == "" {
		if l, c := s.cat.Language(); l != "" {
			lang = l
			if c != "" {
				lang += "-" + c
			}
		}
	}
	if lang == "" {
		return language.English
	}
	tag, err := language.Parse(lang)
	if err != nil {
		s.log.Warn("Unable to parse document language, assuming English", zap.String("language", lang), zap.Error(err))
		return language.English
	}
	return tag
}
