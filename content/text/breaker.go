package text

import (
	"regexp"
	"strings"
)

// DefaultAbbreviations are never treated as sentence ends.
var DefaultAbbreviations = []string{"e.g.", "i.e.", "mrs.", "mr.", "ms.", "dr.", "jr.", "sr.", "vs."}

// terminal punctuation followed by closing quote, bracket or escaped '>', or
// question/exclamation mark followed by space
var boundary = regexp.MustCompile(`[.?!;](?:[)"'>»’”]|&gt;)|[?!] `)

// Breaker is heuristic sentence segmenter which puts every sentence of the
// text on its own line. It is aware of the markup: boundary immediately
// followed by a tag is never broken.
type Breaker struct {
	abbrevs []string
}

// NewBreaker returns segmenter using provided abbreviations, matching is case
// insensitive. When abbrevs is empty DefaultAbbreviations are used.
func NewBreaker(abbrevs []string) *Breaker {
	if len(abbrevs) == 0 {
		abbrevs = DefaultAbbreviations
	}
	b := &Breaker{abbrevs: make([]string, 0, len(abbrevs))}
	for _, a := range abbrevs {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			b.abbrevs = append(b.abbrevs, a)
		}
	}
	return b
}

// Segment returns text with line break after every detected sentence.
// Running it on its own output does not change anything.
func (b *Breaker) Segment(in string) string {
	return b.splitPeriods(breakBoundaries(in))
}

func breakBoundaries(in string) string {
	var (
		out  strings.Builder
		last int
	)
	for _, m := range boundary.FindAllStringIndex(in, -1) {
		start, end := m[0], m[1]
		if end < len(in) && (in[end] == '<' || in[end] == '\n') {
			continue
		}
		out.WriteString(in[last:start])
		out.WriteString(strings.TrimSuffix(in[start:end], " "))
		out.WriteByte('\n')
		last = end
	}
	if last == 0 {
		return in
	}
	out.WriteString(in[last:])
	return out.String()
}

func (b *Breaker) splitPeriods(in string) string {
	var (
		out   strings.Builder
		start int
		pos   int
	)
	for {
		i := strings.Index(in[pos:], ". ")
		if i < 0 {
			break
		}
		i += pos
		if b.abbreviated(in[start : i+1]) {
			pos = i + 1
			continue
		}
		out.WriteString(in[start : i+1])
		out.WriteByte('\n')
		start, pos = i+2, i+2
	}
	if start == 0 {
		return in
	}
	out.WriteString(in[start:])
	return out.String()
}

// abbreviated checks whether text ends with known abbreviation. Plain suffix
// match: "items." ends with "ms." and is suppressed too.
func (b *Breaker) abbreviated(text string) bool {
	lower := strings.ToLower(text)
	for _, a := range b.abbrevs {
		if strings.HasSuffix(lower, a) {
			return true
		}
	}
	return false
}
