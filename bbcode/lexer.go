package bbcode

import "strings"

// Lexer splits forum markup into [Token] values, one per Next call.
//
// The only state is the cursor. Every input produces a finite token stream; anything that
// does not parse as markup degrades to TokenText. Consecutive TokenText tokens may occur
// and have to be concatenated by the consumer.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a Lexer reading input from the beginning.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Input returns the text being tokenized.
func (l *Lexer) Input() string {
	return l.input
}

// Raw returns the input bytes covered by the token.
func (l *Lexer) Raw(tok Token) string {
	return l.input[tok.Span.Start:tok.Span.End]
}

// Next reads the next token.
func (l *Lexer) Next() Token {
	n := len(l.input)
	start := l.pos

	if start >= n {
		return Token{Kind: TokenEOF, Span: Span{n, n}}
	}

	switch l.input[start] {
	case '\n':
		if end, ok := l.matchParagraph(start); ok {
			l.pos = end
			return Token{Kind: TokenParagraph, Span: Span{start, end}}
		}

	case '[':
		if tok, ok := l.matchTag(start); ok {
			l.pos = tok.Span.End
			return tok
		}

	case '@':
		if start == 0 || !isIdent(l.input[start-1]) {
			end := start + 1
			for end < n && isIdent(l.input[end]) {
				end++
			}
			if end > start+1 {
				l.pos = end
				return Token{Kind: TokenAtLink, Span: Span{start, end}, Attr: l.input[start+1 : end]}
			}
		}
	}

	end := l.scanText(start)
	l.pos = end
	return Token{Kind: TokenText, Span: Span{start, end}}
}

// matchParagraph checks for a blank line starting at the newline at index i.
// On success, it returns the index after all following whitespace.
func (l *Lexer) matchParagraph(i int) (int, bool) {
	n := len(l.input)
	j := i + 1
	for j < n && isBlank(l.input[j]) {
		j++
	}
	if j >= n || l.input[j] != '\n' {
		return 0, false
	}
	for j < n && (isBlank(l.input[j]) || l.input[j] == '\n') {
		j++
	}
	return j, true
}

// matchTag tries to read a tag starting at the '[' at index i.
func (l *Lexer) matchTag(i int) (Token, bool) {
	in := l.input
	n := len(in)
	j := i + 1
	if j >= n {
		return Token{}, false
	}

	switch in[j] {
	case '/':
		// [/name]
		nameStart := j + 1
		nameEnd := scanLetters(in, nameStart)
		if nameEnd == nameStart || nameEnd >= n || in[nameEnd] != ']' {
			return Token{}, false
		}
		return Token{
			Kind: TokenTagEnd,
			Span: Span{i, nameEnd + 1},
			Tag:  strings.ToLower(in[nameStart:nameEnd]),
		}, true

	case '*':
		// [*]
		if j+1 < n && in[j+1] == ']' {
			return Token{Kind: TokenTagStart, Span: Span{i, j + 2}, Tag: "*"}, true
		}
		return Token{}, false

	case ':':
		// [:name:]
		nameStart := j + 1
		nameEnd := nameStart
		for nameEnd < n && isIdent(in[nameEnd]) {
			nameEnd++
		}
		if nameEnd == nameStart || !strings.HasPrefix(in[nameEnd:], ":]") {
			return Token{}, false
		}
		return Token{Kind: TokenSmiley, Span: Span{i, nameEnd + 2}, Tag: in[nameStart:nameEnd]}, true
	}

	// [name], [name=value], [name="value"]
	nameStart := j
	nameEnd := scanLetters(in, nameStart)
	if nameEnd == nameStart || nameEnd >= n {
		return Token{}, false
	}

	tok := Token{Kind: TokenTagStart, Tag: strings.ToLower(in[nameStart:nameEnd])}

	switch in[nameEnd] {
	case ']':
		tok.Span = Span{i, nameEnd + 1}
		return tok, true

	case '=':
		valueStart := nameEnd + 1
		if valueStart < n && in[valueStart] == '"' {
			closing := strings.Index(in[valueStart+1:], "\"]")
			if closing < 0 {
				return Token{}, false
			}
			valueEnd := valueStart + 1 + closing
			tok.Attr = in[valueStart+1 : valueEnd]
			tok.HasAttr = true
			tok.Span = Span{i, valueEnd + 2}
			return tok, true
		}

		valueEnd := valueStart
		for valueEnd < n && in[valueEnd] != ']' && in[valueEnd] != '\n' {
			valueEnd++
		}
		if valueEnd >= n || in[valueEnd] != ']' {
			return Token{}, false
		}
		tok.Attr = in[valueStart:valueEnd]
		tok.HasAttr = true
		tok.Span = Span{i, valueEnd + 1}
		return tok, true
	}

	return Token{}, false
}

// scanText returns the end of a text run starting at i. The first byte is always consumed.
// The run stops before '\n', '[', or an '@' that is not preceded by an identifier byte.
func (l *Lexer) scanText(i int) int {
	in := l.input
	j := i + 1
	for j < len(in) {
		switch in[j] {
		case '\n', '[':
			return j
		case '@':
			if !isIdent(in[j-1]) {
				return j
			}
		}
		j++
	}
	return j
}

func scanLetters(s string, i int) int {
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	return i
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdent(b byte) bool {
	return isLetter(b) || ('0' <= b && b <= '9') || b == '_'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func isSpace(b byte) bool {
	return isBlank(b) || b == '\n'
}
