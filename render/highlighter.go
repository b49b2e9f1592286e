package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Segment is a piece of highlighted code.
type Segment struct {
	Text string

	// Class is the syntax class ("kw", "str", "com", "num"), empty for unstyled text.
	Class string

	// Link is an optional link target for the segment.
	Link string
}

// Highlighter splits code into styled segments. The concatenated segment texts
// must equal the input.
type Highlighter interface {
	Highlight(lang string, code string) []Segment
}

// SimpleHighlighter marks keywords, strings, comments and numbers using the
// chroma lexer registered for the language name. Unknown languages are not highlighted.
type SimpleHighlighter struct{}

// Highlight implements [Highlighter].
func (SimpleHighlighter) Highlight(lang string, code string) []Segment {
	if code == "" {
		return nil
	}

	l := lexers.Get(strings.TrimSpace(lang))
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	// EnsureLF would rewrite "\r\n" and break the segment/input correspondence
	it, err := l.Tokenise(&chroma.TokeniseOptions{State: "root"}, code)
	if err != nil {
		return []Segment{{Text: code}}
	}

	var out []Segment
	emit := func(text, class string) {
		if text == "" {
			return
		}
		if n := len(out); n > 0 && out[n-1].Class == class {
			out[n-1].Text += text
			return
		}
		out = append(out, Segment{Text: text, Class: class})
	}

	// Lexers may append a final newline; tokens are clipped to the input.
	pos := 0
	for tok := it(); tok != chroma.EOF && pos < len(code); tok = it() {
		rest := code[pos:]
		switch {
		case strings.HasPrefix(rest, tok.Value):
			emit(tok.Value, tokenClass(tok.Type))
			pos += len(tok.Value)
		case strings.HasPrefix(tok.Value, rest):
			emit(rest, tokenClass(tok.Type))
			pos = len(code)
		default:
			emit(rest, "")
			pos = len(code)
		}
	}
	emit(code[pos:], "")
	return out
}

func tokenClass(t chroma.TokenType) string {
	switch {
	case t.InCategory(chroma.Keyword):
		return "kw"
	case t.InCategory(chroma.Comment):
		return "com"
	case t.InSubCategory(chroma.LiteralString):
		return "str"
	case t.InSubCategory(chroma.LiteralNumber):
		return "num"
	}
	return ""
}
