package config

// Sentence detection used when breaking sentences.
// ENUM(heuristic, punkt)
type Segmenter int

// Kind of produced output, derived from document toggles.
// ENUM(plain, styled, raw)
type OutputMode int

func (m OutputMode) Ext() string {
	switch m {
	case OutputModePlain:
		return ".txt"
	case OutputModeStyled:
		return ".html"
	case OutputModeRaw:
		return ".xml"
	default:
		// this should never happen
		panic("unsupported output mode requested")
	}
}
