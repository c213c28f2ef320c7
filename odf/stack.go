package odf

// ContextParser handles the subtree of the element which activated it.
// BeginContext is called with the activating element, StartElement and
// EndElement with its descendants, EndContext when activating element
// closes.
type ContextParser interface {
	BeginContext(name string, attrs Attrs) error
	EndContext() error
	StartElement(name string, attrs Attrs) error
	EndElement(name string) error
}

// BaseContext provides no-op ContextParser methods to be embedded by concrete
// handlers.
type BaseContext struct{}

func (BaseContext) BeginContext(string, Attrs) error { return nil }
func (BaseContext) EndContext() error                { return nil }
func (BaseContext) StartElement(string, Attrs) error { return nil }
func (BaseContext) EndElement(string) error          { return nil }

// ActivateFunc decides whether opening element starts a new context.
// Returning nil means no new context.
type ActivateFunc func(s *Stack, name string, attrs Attrs) ContextParser

type frame struct {
	tag    string
	parser ContextParser
}

// Stack routes structural events to the innermost active context. It
// implements Handler.
type Stack struct {
	frames   []frame
	activate ActivateFunc

	// element currently being opened
	name  string
	attrs Attrs
}

// NewStack creates engine with provided activation rule.
func NewStack(activate ActivateFunc) *Stack {
	return &Stack{activate: activate}
}

// SetContext pushes parser for the element currently being opened and begins
// its context. Parser may cancel itself with PopContext from BeginContext.
func (s *Stack) SetContext(p ContextParser) error {
	s.frames = append(s.frames, frame{tag: s.name, parser: p})
	return p.BeginContext(s.name, s.attrs)
}

// PopContext removes innermost context without calling its EndContext.
func (s *Stack) PopContext() {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1] = frame{}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns number of active contexts.
func (s *Stack) Depth() int {
	return len(s.frames)
}

func (s *Stack) top() ContextParser {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1].parser
}

func (s *Stack) StartElement(name string, attrs Attrs) error {
	s.name, s.attrs = name, attrs

	if p := s.top(); p != nil {
		if err := p.StartElement(name, attrs); err != nil {
			return err
		}
	}
	if s.activate == nil {
		return nil
	}
	if p := s.activate(s, name, attrs); p != nil {
		return s.SetContext(p)
	}
	return nil
}

func (s *Stack) EndElement(name string) error {
	if n := len(s.frames); n > 0 && s.frames[n-1].tag == name {
		if err := s.frames[n-1].parser.EndContext(); err != nil {
			return err
		}
		s.PopContext()
	}
	if p := s.top(); p != nil {
		return p.EndElement(name)
	}
	return nil
}

// Characters are not routed, contexts only deal with structure.
func (s *Stack) Characters(string) error {
	return nil
}
