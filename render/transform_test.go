package render

import (
	"strings"
	"testing"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
	"github.com/stretchr/testify/require"
)

func parseForum(input string) *tn.Node {
	return bbcode.Parse(input, bbcode.Options{}, nil)
}

func TestQuote(t *testing.T) {
	testCases := []struct {
		name string
		ctx  *Context
		want string
	}{
		{"NoContext", nil, "[quote]x[/quote]"},
		{"Author", &Context{QuoteAuthor: "bob"}, "[quote=bob]x[/quote]"},
		{"AuthorAndPost", &Context{QuoteAuthor: "bob", QuoteMessageID: 99}, "[quote=bob;99]x[/quote]"},
		{"PostIDAloneIsNoAttribution", &Context{QuoteMessageID: 99}, "[quote]x[/quote]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := parseForum("x")
			Quote(root, tc.ctx)
			require.Equal(t, tc.want, RenderBBCode(root))
		})
	}
}

func TestBreak(t *testing.T) {
	root := parseForum("a[break]b\n\nc")
	Break(root)
	require.Equal(t, "a", RenderBBCode(root))

	root = parseForum("a\n\nb")
	Break(root)
	require.Equal(t, "a\n\nb", RenderBBCode(root))
}

func TestAbstract(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"Short", "a", "a"},
		{"StripsQuotes", "[quote]q[/quote]a", "a"},
		{"KeepsTwoBlocks", "a\n\nb\n\nc", "a\n\nb"},
		{"QuotesBeforeCounting", "[quote]q[/quote]a\n\nb\n\nc", "a\n\nb"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := parseForum(tc.input)
			Abstract(root)
			require.Equal(t, tc.want, RenderBBCode(root))
		})
	}
}

func TestAbstract_Cut(t *testing.T) {
	text := wordSoup(100)
	root := plainParagraph(text)
	Abstract(root)

	out := root.TextContent()
	require.LessOrEqual(t, len(out), AbstractMaxLength)
	require.True(t, strings.HasSuffix(out, ellipsis))
	require.True(t, strings.HasPrefix(text, strings.TrimSuffix(out, ellipsis)+" "))
}

func TestAbstract_CutInsideMarkup(t *testing.T) {
	root := parseForum("[b]" + wordSoup(30) + "[/b] " + wordSoup(30) + "\n\nmore")
	Abstract(root)

	require.LessOrEqual(t, root.TextLength(), AbstractMaxLength)
	require.Len(t, root.Children, 1)
	require.True(t, strings.HasSuffix(root.TextContent(), ellipsis))
}

func TestAbstract_Idempotent(t *testing.T) {
	inputs := []string{
		"short",
		wordSoup(100),
		"[quote]q[/quote]" + wordSoup(20) + "\n\n[i]" + wordSoup(40) + "[/i]\n\nthird",
		strings.Repeat("x", 500),
		strings.Repeat("ü", 300),
	}

	for _, input := range inputs {
		root := parseForum(input)
		Abstract(root)
		once := root.String()
		Abstract(root)
		require.Equal(t, once, root.String())
	}
}

func TestCutText(t *testing.T) {
	require.Equal(t, "hello", cutText("hello world foo", 8))
	require.Equal(t, "abc", cutText("abcdef", 3))
	require.Equal(t, "é", cutText("ééé", 3))
	require.Equal(t, "", cutText("abc", 0))
	require.Equal(t, "a", cutText("a   bcdef", 3))
}
