package bbcode

// Span defines bounds of the window view of a string.
type Span struct {
	// Start defines the inclusive start of the view.
	Start int

	// End defines the exclusive end of the view.
	End int
}

// NewSpan creates new Span from the startIdx and the width.
func NewSpan(startIdx int, width int) Span {
	return Span{startIdx, startIdx + width}
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// TokenKind defines the type of a [Token].
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenTagStart
	TokenTagEnd
	TokenSmiley
	TokenParagraph
	TokenAtLink
	TokenText
)

// Token is one lexical element of the input.
type Token struct {
	// Kind defines the type of the Token.
	Kind TokenKind

	// Span covers the raw bytes of the Token in the input string.
	Span Span

	// Tag is the lower-cased tag name for TagStart/TagEnd and the smiley name for Smiley tokens.
	Tag string

	// Attr is the tag attribute ("[url=Attr]"), or the user name of an AtLink token.
	Attr string

	// HasAttr distinguishes "[list=]" from "[list]".
	HasAttr bool
}
