package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lexAll(input string) []Token {
	l := NewLexer(input)
	var out []Token
	for {
		tok := l.Next()
		if tok.Kind == TokenEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexer_Tokens(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "Text",
			input: "hello",
			want:  []Token{{Kind: TokenText, Span: Span{0, 5}}},
		},
		{
			name:  "StartEnd",
			input: "[B]x[/B]",
			want: []Token{
				{Kind: TokenTagStart, Span: Span{0, 3}, Tag: "b"},
				{Kind: TokenText, Span: Span{3, 4}},
				{Kind: TokenTagEnd, Span: Span{4, 8}, Tag: "b"},
			},
		},
		{
			name:  "Attribute",
			input: "[url=http://x]",
			want:  []Token{{Kind: TokenTagStart, Span: Span{0, 14}, Tag: "url", Attr: "http://x", HasAttr: true}},
		},
		{
			name:  "QuotedAttribute",
			input: `[quote="a [b] c"]`,
			want:  []Token{{Kind: TokenTagStart, Span: Span{0, 17}, Tag: "quote", Attr: "a [b] c", HasAttr: true}},
		},
		{
			name:  "EmptyAttribute",
			input: "[list=]",
			want:  []Token{{Kind: TokenTagStart, Span: Span{0, 7}, Tag: "list", HasAttr: true}},
		},
		{
			name:  "ListItem",
			input: "[*]",
			want:  []Token{{Kind: TokenTagStart, Span: Span{0, 3}, Tag: "*"}},
		},
		{
			name:  "Smiley",
			input: "[:smile:]",
			want:  []Token{{Kind: TokenSmiley, Span: Span{0, 9}, Tag: "smile"}},
		},
		{
			name:  "Paragraph",
			input: "a\n \n\tb",
			want: []Token{
				{Kind: TokenText, Span: Span{0, 1}},
				{Kind: TokenParagraph, Span: Span{1, 5}},
				{Kind: TokenText, Span: Span{5, 6}},
			},
		},
		{
			name:  "SingleNewline",
			input: "a\nb",
			want: []Token{
				{Kind: TokenText, Span: Span{0, 1}},
				{Kind: TokenText, Span: Span{1, 3}},
			},
		},
		{
			name:  "AtLink",
			input: "hi @bob!",
			want: []Token{
				{Kind: TokenText, Span: Span{0, 3}},
				{Kind: TokenAtLink, Span: Span{3, 7}, Attr: "bob"},
				{Kind: TokenText, Span: Span{7, 8}},
			},
		},
		{
			name:  "MailAddressIsText",
			input: "a@b",
			want:  []Token{{Kind: TokenText, Span: Span{0, 3}}},
		},
		{
			name:  "UnterminatedTag",
			input: "[b",
			want:  []Token{{Kind: TokenText, Span: Span{0, 2}}},
		},
		{
			name:  "AttributeWithNewline",
			input: "[url=a\nb]",
			want: []Token{
				{Kind: TokenText, Span: Span{0, 6}},
				{Kind: TokenText, Span: Span{6, 9}},
			},
		},
		{
			name:  "NotATag",
			input: "[1]",
			want:  []Token{{Kind: TokenText, Span: Span{0, 3}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, lexAll(tc.input))
		})
	}
}

func TestLexer_CoversInput(t *testing.T) {
	inputs := []string{
		"",
		"[[[]]]",
		"@@@",
		"[url=\"x]",
		"\n\n\n",
		"[/]",
		"[::]",
		"a [b]c[/b] @d\n\n[quote=\"e\"]f[/quote]",
	}

	for _, input := range inputs {
		end := 0
		for _, tok := range lexAll(input) {
			require.Equal(t, end, tok.Span.Start, "gap in %q", input)
			require.Greater(t, tok.Span.End, tok.Span.Start, "empty token in %q", input)
			end = tok.Span.End
		}
		require.Equal(t, len(input), end)
	}
}

func TestLexer_Raw(t *testing.T) {
	l := NewLexer("x[b]")
	l.Next()
	tok := l.Next()
	require.Equal(t, "[b]", l.Raw(tok))
	require.Equal(t, "x[b]", l.Input())
	require.Equal(t, TokenEOF, l.Next().Kind)
	require.Equal(t, TokenEOF, l.Next().Kind)
}
