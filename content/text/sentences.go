package text

import (
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Splitter is sentence segmenter based on punkt model. Only English model is
// available.
type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

// NewSplitter returns splitter for the language or nil when there is no
// suitable model.
func NewSplitter(lang language.Tag, log *zap.Logger) *Splitter {
	name := display.English.Languages().Name(lang)

	base, confidence := lang.Base()
	if confidence == language.No {
		log.Warn("Unable to determine language base", zap.Stringer("tag", lang))
		return nil
	}
	if en, _ := language.English.Base(); base != en {
		log.Warn("Unable to find suitable sentence tokenizer model", zap.String("language", name), zap.Stringer("tag", lang))
		return nil
	}

	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data", zap.String("language", name), zap.Error(err))
		return nil
	}
	return &Splitter{tok}
}

// Split returns slice of sentences.
func (s *Splitter) Split(in string) []string {
	var sentences []string
	if s == nil {
		// sentences tokenizer is off
		return append(sentences, in)
	}

	for _, sentence := range s.Tokenize(in) {
		sentences = append(sentences, sentence.Text)
	}

	// Sentence trailing spaces belong to the next sentence after
	// tokenization, move them back where they belong.
	for i := range len(sentences) - 1 {
		for idx, sym := range sentences[i+1] {
			if !unicode.IsSpace(sym) {
				sentences[i] = sentences[i] + sentences[i+1][0:idx]
				sentences[i+1] = sentences[i+1][idx:]
				break
			}
		}
	}
	return sentences
}

// Segment puts every sentence on its own line.
func (s *Splitter) Segment(in string) string {
	parts := s.Split(in)
	if len(parts) == 0 {
		return in
	}
	for i := range len(parts) - 1 {
		parts[i] = strings.TrimRightFunc(parts[i], unicode.IsSpace)
	}
	return strings.Join(parts, "\n")
}
