package render

import (
	"strings"
	"unicode/utf8"

	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// MaxTextLength limits the output of [RenderText].
const MaxTextLength = 10000

// RenderText flattens a tree to plain text, for excerpts and search indexing.
// Semantic links are replaced by the names of their targets.
func RenderText(n *tn.Node, ctx *Context, opts Options) string {
	r := textRenderer{ctx: ctx, opts: opts}
	r.node(n)
	return r.out.String()
}

type textRenderer struct {
	ctx  *Context
	opts Options
	out  strings.Builder

	// a separator is due before the next text
	sep string

	truncated bool
}

// write appends text, stopping at MaxTextLength.
func (r *textRenderer) write(s string) {
	if s == "" {
		return
	}
	if r.sep != "" && r.out.Len() > 0 {
		s = r.sep + s
	}
	r.sep = ""

	if r.truncated {
		return
	}
	if room := MaxTextLength - r.out.Len(); len(s) > room {
		for room > 0 && !utf8.RuneStart(s[room]) {
			room--
		}
		s = s[:room]
		r.truncated = true
	}
	r.out.WriteString(s)
}

func (r *textRenderer) full() bool {
	return r.truncated
}

func (r *textRenderer) children(n *tn.Node) {
	for _, c := range n.Children {
		if r.full() {
			return
		}
		r.node(c)
	}
}

func (r *textRenderer) node(n *tn.Node) {
	switch n.Major {
	case tn.MajorPlain:
		r.write(n.Text)

	case tn.MajorParagraph, tn.MajorGroup:
		r.children(n)
		if n.Major == tn.MajorParagraph && r.out.Len() > 0 {
			r.sep = "\n\n"
		}

	case tn.MajorLink:
		if len(n.Children) > 0 {
			r.children(n)
			return
		}
		switch n.Minor {
		case tn.MinorThread, tn.MinorPost, tn.MinorGame, tn.MinorForum:
			if target, ok := resolveLink(n, r.ctx, r.opts); ok {
				r.write(target.Name)
				return
			}
		}
		r.write(n.Text)

	case tn.MajorSpecial:
		switch n.Minor {
		case tn.MinorLineBreak:
			r.write("\n")
		case tn.MinorSmiley:
			r.write(":" + n.Text + ":")
		default:
			r.children(n)
		}

	default:
		r.children(n)
	}
}
