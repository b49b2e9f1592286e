package render

import (
	"strconv"
	"strings"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	"github.com/stefanreuther/c2ng-sub017/inline"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// Line width of mail output. Deeply nested prefixes widen it to prefix length + MailMinTextWidth.
const (
	MailWidth        = 72
	MailMinTextWidth = 42
)

// RenderMail renders a tree as word-wrapped plain text for an email body.
func RenderMail(n *tn.Node, ctx *Context, opts Options) string {
	return renderMail(n, ctx, opts, false)
}

// RenderNews renders a tree for an NNTP posting. It differs from [RenderMail] in
// how links to posts, topics and forums are written.
func RenderNews(n *tn.Node, ctx *Context, opts Options) string {
	return renderMail(n, ctx, opts, true)
}

func renderMail(n *tn.Node, ctx *Context, opts Options, news bool) string {
	r := &mailRenderer{ctx: ctx, opts: opts, news: news}
	if n.IsInline() || n.Is(tn.MajorParagraph, tn.MinorFragment) {
		r.paragraph(n, "", "")
	} else {
		r.block(n, "", "")
	}

	out := strings.TrimRight(r.out.String(), "\n")
	if n.Is(tn.MajorParagraph, tn.MinorFragment) {
		return out
	}
	return out + "\n"
}

type mailRenderer struct {
	ctx  *Context
	opts Options
	news bool

	out strings.Builder

	// prefix of the next line, and of the lines after it
	first string
	cont  string

	line strings.Builder
	word strings.Builder

	// a blank line is due before the next block
	blank bool
}

// separate starts a new block, writing the pending blank line.
func (r *mailRenderer) separate(prefix string) {
	if r.blank {
		r.out.WriteString(strings.TrimRight(prefix, " "))
		r.out.WriteByte('\n')
		r.blank = false
	}
}

// emitLine writes the current line with its prefix.
func (r *mailRenderer) emitLine() {
	r.out.WriteString(strings.TrimRight(r.first+r.line.String(), " \t"))
	r.out.WriteByte('\n')
	r.line.Reset()
	r.first = r.cont
}

// addWord appends a word to the current line, starting a new line if it does not fit.
func (r *mailRenderer) addWord(w string) {
	if w == "" {
		return
	}
	width := max(MailWidth, len(r.first)+MailMinTextWidth)
	switch {
	case r.line.Len() == 0:
		r.line.WriteString(w)
	case len(r.first)+r.line.Len()+1+len(w) > width:
		r.emitLine()
		r.line.WriteString(w)
	default:
		r.line.WriteByte(' ')
		r.line.WriteString(w)
	}
}

func (r *mailRenderer) endWord() {
	r.addWord(r.word.String())
	r.word.Reset()
}

// endLine finishes the current line; with force, an empty line is written too.
func (r *mailRenderer) endLine(force bool) {
	r.endWord()
	if r.line.Len() > 0 || force {
		r.emitLine()
	}
}

func (r *mailRenderer) blocks(children []*tn.Node, first, cont string) {
	for _, c := range children {
		r.block(c, first, cont)
		if !c.Is(tn.MajorParagraph, tn.MinorBreak) {
			first = cont
		}
	}
}

func (r *mailRenderer) block(n *tn.Node, first, cont string) {
	switch n.Major {
	case tn.MajorParagraph:
		switch n.Minor {
		case tn.MinorBreak:
		case tn.MinorCode:
			r.separate(first)
			r.first, r.cont = first, cont
			for _, line := range strings.Split(strings.TrimRight(n.TextContent(), "\n"), "\n") {
				r.line.WriteString(line)
				r.emitLine()
			}
			r.blank = true
		default:
			r.paragraph(n, first, cont)
		}

	case tn.MajorGroup:
		switch n.Minor {
		case tn.MinorQuote:
			r.separate(first)
			if n.Text != "" {
				r.first, r.cont = first, first
				r.line.WriteString(r.attribution(n.Text))
				r.emitLine()
			}
			r.blocks(n.Children, first+"> ", first+"> ")
			r.blank = true
		case tn.MinorList:
			r.separate(first)
			for i, item := range n.Children {
				bullet := "* "
				if n.Text == "1" {
					bullet = strconv.Itoa(i+1) + ". "
				}
				indent := strings.Repeat(" ", len(bullet))
				r.blank = false
				if item.Is(tn.MajorGroup, tn.MinorListItem) {
					r.blocks(item.Children, first+bullet, cont+indent)
				} else {
					r.block(item, first+bullet, cont+indent)
				}
				first = cont
			}
			r.blank = true
		default:
			r.blocks(n.Children, first, cont)
		}

	default:
		r.paragraph(n, first, cont)
	}
}

func (r *mailRenderer) paragraph(n *tn.Node, first, cont string) {
	r.separate(first)
	r.first, r.cont = first, cont
	if n.IsInline() {
		r.inline(n)
	} else {
		r.inlines(n.Children)
	}
	r.endLine(false)
	r.blank = true
}

func (r *mailRenderer) inlines(children []*tn.Node) {
	for _, c := range children {
		r.inline(c)
	}
}

func (r *mailRenderer) inline(n *tn.Node) {
	switch n.Major {
	case tn.MajorPlain:
		r.plain(n.Text)

	case tn.MajorLink:
		r.link(n)

	case tn.MajorSpecial:
		switch n.Minor {
		case tn.MinorLineBreak:
			r.endLine(true)
		case tn.MinorSmiley:
			if def, ok := inline.Default.SmileyByName(n.Text); ok && def.Symbol != "" {
				r.word.WriteString(def.Symbol)
			} else {
				r.word.WriteString(":" + n.Text + ":")
			}
		case tn.MinorImage:
			r.inlines(n.Children)
			r.reference("<" + r.targetOrPseudo(n) + ">")
		default:
			r.inlines(n.Children)
		}

	default:
		r.inlines(n.Children)
	}
}

func (r *mailRenderer) plain(text string) {
	for i := 0; i < len(text); i++ {
		if c := text[i]; c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			r.endWord()
		} else {
			r.word.WriteByte(c)
		}
	}
}

// reference appends an unbreakable "<target>" word after the link text.
func (r *mailRenderer) reference(ref string) {
	r.endWord()
	r.addWord(ref)
}

func (r *mailRenderer) link(n *tn.Node) {
	target, ok := resolveLink(n, r.ctx, r.opts)

	if n.Minor == tn.MinorUser {
		switch {
		case len(n.Children) > 0:
			r.inlines(n.Children)
		case ok:
			r.plain(target.Name)
		default:
			r.plain(n.Text)
		}
		return
	}

	if len(n.Children) > 0 {
		r.inlines(n.Children)
	} else if ok && n.Minor != tn.MinorURL && n.Minor != tn.MinorEmail {
		r.plain(target.Name)
	}

	if !ok {
		r.reference("<" + bbcode.TagName(n.Major, n.Minor) + ":" + n.Text + ">")
		return
	}
	if ref, ok := r.newsReference(n, target); ok {
		r.reference(ref)
		return
	}
	r.reference("<" + target.URL + ">")
}

// newsReference returns the NNTP form of a link to a post, topic or forum.
func (r *mailRenderer) newsReference(n *tn.Node, target linkTarget) (string, bool) {
	if !r.news || r.ctx == nil || r.ctx.News == nil {
		return "", false
	}
	switch n.Minor {
	case tn.MinorPost:
		if id, ok := r.ctx.News.MessageID(target.ID); ok {
			return "<" + id + ">", true
		}
	case tn.MinorThread:
		if id, ok := r.ctx.News.TopicMessageID(target.ID); ok {
			return "<" + id + ">", true
		}
	case tn.MinorForum:
		if group, ok := r.ctx.News.Newsgroup(target.ID); ok {
			return "<news:" + group + ">", true
		}
	}
	return "", false
}

func (r *mailRenderer) targetOrPseudo(n *tn.Node) string {
	if n.Text != "" && isAllowedURL(n.Text) {
		return n.Text
	}
	return bbcode.TagName(n.Major, n.Minor) + ":" + n.Text
}

// attribution formats a quote header, "* Name:" or "* Name in <ref>:".
func (r *mailRenderer) attribution(text string) string {
	user, post := parseAttribution(text)

	name := user
	if target, ok := resolveLink(tn.New(tn.MajorLink, tn.MinorUser, user), r.ctx, r.opts); ok {
		name = target.Name
	}

	if post != "" {
		postNode := tn.New(tn.MajorLink, tn.MinorPost, post)
		if target, ok := resolveLink(postNode, r.ctx, r.opts); ok {
			ref, ok := r.newsReference(postNode, target)
			if !ok {
				ref = "<" + target.URL + ">"
			}
			return "* " + name + " in " + ref + ":"
		}
	}
	return "* " + name + ":"
}
