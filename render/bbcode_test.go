package render

import (
	"strings"
	"testing"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	"github.com/stefanreuther/c2ng-sub017/inline"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
	"github.com/stretchr/testify/require"
)

func plainParagraph(text string) *tn.Node {
	root := tn.New(tn.MajorGroup, tn.MinorRoot, "")
	p := tn.New(tn.MajorParagraph, tn.MinorNormal, "")
	p.Append(tn.NewPlain(text))
	root.Append(p)
	return root
}

func TestRenderBBCode_Escape(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{"plain", "plain"},
		{"a[b]c", "a[noparse][b][/noparse]c"},
		{"[b][i]x", "[noparse][b][i][/noparse]x"},
		{"[foo]", "[foo]"},
		{"a@b", "a@b"},
		{"hi @bob", "hi [noparse]@bob[/noparse]"},
		{"smile :-)", "smile [noparse]:-)[/noparse]"},
		{"see http://x/", "see [noparse]http://x/[/noparse]"},
		{"[/noparse]", "[noparse][/[/noparse]noparse]"},
		{"x[/NOPARSE]y[b]", "x[noparse][/[/noparse]NOPARSE]y[noparse][b][/noparse]"},
		{":-D@bob", "[noparse]:-D@bob[/noparse]"},
		{"[:wink:]", "[noparse][:wink:][/noparse]"},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			out := RenderBBCode(plainParagraph(tc.text))
			require.Equal(t, tc.want, out)
		})
	}
}

// TestRenderBBCode_EscapeIsSufficient checks that escaped plain text parses back to itself.
func TestRenderBBCode_EscapeIsSufficient(t *testing.T) {
	texts := []string{
		"a[b]c",
		"[url=x]y[/url]",
		"hi @bob and @alice",
		"B-) 8-) :-( ;-) :'(",
		"mailto:x@y.z and https://a.b/(c)",
		"[noparse][/noparse]",
		"[/noparse][/noparse]x[/noparse]",
		"[*][list][quote=a]",
		":-D@bob x:-Dy",
		"[:smile:]@x",
		"word[nl]word[break]",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			bb := RenderBBCode(plainParagraph(text))
			tree := bbcode.Parse(bb, bbcode.Options{Kinds: inline.AllKinds}, nil)
			require.Equal(t, plainParagraph(text).String(), tree.String(), "via %q", bb)
		})
	}
}

func TestRenderBBCode_RoundTrip(t *testing.T) {
	inputs := []string{
		"hello, [b]world[/b]",
		"[quote=bob;12]a\n\nb[/quote]\n\nreply",
		"[list=1]\n[*]one\n[*]two\n\nmore\n[/list]",
		"[list]\n[*]a\n\n[list]\n[*]b\n[/list]\n[/list]",
		"[center]x[/center]",
		"[code=c]int x;[/code]",
		"a[nl]b[break]",
		"[color=#ff0000][size=+2][font=Arial]x[/font][/size][/color]",
		"[url=http://a]x[/url] [url]http://b[/url] [email]a@b.c[/email]",
		"[url=\"a b@c\"][/url]",
		"[img]http://x/y.png[/img] [img=http://x/z.png]alt[/img]",
		"@bob [user]alice[/user] [thread]1[/thread] [:wink:]",
		"[quote=\"x]y\"]z[/quote]",
		"[url=http://a][b]bold[/b] link[/url]",
		"[url=http://a/][img=http://i/]alt[url=http://b/]y[/url]",
		"[b]see http://x/ more[/email]",
		"[i]@bob[/email]",
		"[url]http://foo/\"[/list]][quote]",
		"[img][break][font=Arial][size=7][/font] [url]http://a/[/url]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			opts := bbcode.Options{Kinds: inline.AllKinds}
			tree := bbcode.Parse(input, opts, nil)
			again := bbcode.Parse(RenderBBCode(tree), opts, nil)
			require.Equal(t, tree.String(), again.String())
		})
	}
}

func TestRenderBBCode_ByteExact(t *testing.T) {
	input := "hello, [b]world[/b]"
	tree := bbcode.Parse(input, bbcode.Options{}, nil)
	require.Equal(t, input, RenderBBCode(tree))
}

func TestRenderBBCode_LinkForms(t *testing.T) {
	link := func(target string) *tn.Node {
		return tn.New(tn.MajorLink, tn.MinorURL, target)
	}

	require.Equal(t, "[url]http://a[/url]", RenderBBCode(link("http://a")))
	require.Equal(t, "[url=@x][/url]", RenderBBCode(link("@x")))
	require.Equal(t, "[url=\"a[b]\"][/url]", RenderBBCode(link("a[b]")))
	require.Equal(t, "[url=a b@c][/url]", RenderBBCode(link("a b@c")))
	require.Equal(t, "[url=x:-)][/url]", RenderBBCode(link("x:-)")))
	require.True(t, strings.HasPrefix(RenderBBCode(link(" a")), "[url= a]"))
	withText := func(target string) *tn.Node {
		n := link(target)
		n.Append(tn.NewPlain("x"))
		return n
	}
	require.Equal(t, "[url=a\"b]x[/url]", RenderBBCode(withText("a\"b")))
	require.Equal(t, "[url=\"\"a\"]x[/url]", RenderBBCode(withText("\"a")))
	require.Equal(t, "[url]http://foo/\"][/url]", RenderBBCode(link("http://foo/\"]")))
}

func TestRenderBBCode_QuoteBracketTarget(t *testing.T) {
	targets := []string{
		"http://foo/\"]",
		"x\"]y[b]",
		"\"]",
		"@bob\"]",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			root := tn.New(tn.MajorGroup, tn.MinorRoot, "")
			p := tn.New(tn.MajorParagraph, tn.MinorNormal, "")
			p.Append(tn.New(tn.MajorLink, tn.MinorURL, target))
			root.Append(p)

			bb := RenderBBCode(root)
			tree := bbcode.Parse(bb, bbcode.Options{Kinds: inline.AllKinds}, nil)
			require.Equal(t, root.String(), tree.String(), "via %q", bb)
		})
	}
}
