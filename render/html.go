package render

import (
	"strconv"
	"strings"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	"github.com/stefanreuther/c2ng-sub017/inline"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// RenderHTML renders a tree as an HTML fragment. All text is entity-encoded,
// and link targets are restricted to an allow-list of URL schemes.
func RenderHTML(n *tn.Node, ctx *Context, opts Options) string {
	var b strings.Builder
	r := htmlRenderer{out: &b, ctx: ctx, opts: opts}
	if n.IsInline() {
		r.inline(n)
	} else {
		r.block(n)
	}
	return b.String()
}

type htmlRenderer struct {
	out  *strings.Builder
	ctx  *Context
	opts Options
}

// escapeHTML encodes the characters that are special in text and attribute values.
func escapeHTML(b *strings.Builder, s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		default:
			continue
		}
		b.WriteString(s[last:i])
		b.WriteString(esc)
		last = i + 1
	}
	b.WriteString(s[last:])
}

func (r htmlRenderer) text(s string) {
	escapeHTML(r.out, s)
}

func (r htmlRenderer) blocks(children []*tn.Node) {
	for _, c := range children {
		r.block(c)
	}
}

func (r htmlRenderer) inlines(children []*tn.Node) {
	for _, c := range children {
		r.inline(c)
	}
}

func (r htmlRenderer) block(n *tn.Node) {
	switch n.Major {
	case tn.MajorParagraph:
		switch n.Minor {
		case tn.MinorNormal:
			r.out.WriteString("<p>")
			r.inlines(n.Children)
			r.out.WriteString("</p>\n")
		case tn.MinorCentered:
			r.out.WriteString("<center>")
			r.inlines(n.Children)
			r.out.WriteString("</center>\n")
		case tn.MinorCode:
			r.out.WriteString("<pre>")
			r.code(n)
			r.out.WriteString("</pre>\n")
		case tn.MinorBreak:
		default:
			r.inlines(n.Children)
		}

	case tn.MajorGroup:
		switch n.Minor {
		case tn.MinorQuote:
			r.out.WriteString("<blockquote>")
			if n.Text != "" {
				r.out.WriteString(`<div class="attribution">`)
				r.attribution(n.Text)
				r.out.WriteString(":</div>\n")
			}
			r.blocks(n.Children)
			r.out.WriteString("</blockquote>\n")
		case tn.MinorList:
			r.list(n)
		case tn.MinorListItem:
			r.out.WriteString("<li>")
			r.blocks(n.Children)
			r.out.WriteString("</li>\n")
		default:
			r.blocks(n.Children)
		}

	default:
		r.inline(n)
	}
}

// list renders items compactly if every item is a single paragraph.
func (r htmlRenderer) list(n *tn.Node) {
	tag := "ul"
	switch n.Text {
	case "1", "a", "A", "i", "I":
		tag = "ol"
		r.out.WriteString(`<ol type="` + n.Text + `">`)
	default:
		r.out.WriteString("<ul>")
	}

	simple := n.IsSimpleList()
	for _, item := range n.Children {
		if simple {
			r.out.WriteString("<li>")
			r.inlines(item.Children[0].Children)
			r.out.WriteString("</li>\n")
		} else {
			r.block(item)
		}
	}

	r.out.WriteString("</" + tag + ">")
}

func (r htmlRenderer) attribution(text string) {
	user, post := parseAttribution(text)

	if target, ok := resolveLink(tn.New(tn.MajorLink, tn.MinorUser, user), r.ctx, r.opts); ok {
		r.anchor(target.URL, userClass(target))
		r.text(target.Name)
		r.out.WriteString("</a>")
	} else {
		r.text(user)
	}

	if post == "" {
		return
	}
	if target, ok := resolveLink(tn.New(tn.MajorLink, tn.MinorPost, post), r.ctx, r.opts); ok {
		r.out.WriteString(" in ")
		r.anchor(target.URL, "")
		r.text(target.Name)
		r.out.WriteString("</a>")
	}
}

func userClass(target linkTarget) string {
	if target.Self {
		return "userlink-me"
	}
	return "userlink"
}

func (r htmlRenderer) anchor(href string, class string) {
	r.out.WriteString(`<a href="`)
	r.text(href)
	r.out.WriteByte('"')
	if class != "" {
		r.out.WriteString(` class="` + class + `"`)
	}
	r.out.WriteByte('>')
}

func (r htmlRenderer) code(n *tn.Node) {
	var hl Highlighter
	if r.ctx != nil {
		hl = r.ctx.Highlighter
	}

	for _, c := range n.Children {
		if c.Major != tn.MajorPlain {
			r.inline(c)
			continue
		}
		if hl == nil {
			r.text(c.Text)
			continue
		}
		for _, seg := range hl.Highlight(n.Text, c.Text) {
			switch {
			case seg.Link != "" && isAllowedURL(seg.Link):
				r.anchor(seg.Link, seg.Class)
				r.text(seg.Text)
				r.out.WriteString("</a>")
			case seg.Class != "":
				r.out.WriteString(`<span class="syn-` + seg.Class + `">`)
				r.text(seg.Text)
				r.out.WriteString("</span>")
			default:
				r.text(seg.Text)
			}
		}
	}
}

var inlineTags = map[tn.Minor]string{
	tn.MinorBold:          "b",
	tn.MinorItalic:        "i",
	tn.MinorStrikeThrough: "s",
	tn.MinorUnderline:     "u",
	tn.MinorMonospace:     "tt",
}

func (r htmlRenderer) inline(n *tn.Node) {
	switch n.Major {
	case tn.MajorPlain:
		r.text(n.Text)

	case tn.MajorInline:
		tag, ok := inlineTags[n.Minor]
		if !ok {
			r.inlines(n.Children)
			return
		}
		r.out.WriteString("<" + tag + ">")
		r.inlines(n.Children)
		r.out.WriteString("</" + tag + ">")

	case tn.MajorInlineAttr:
		var style string
		switch n.Minor {
		case tn.MinorColor:
			style = "color: " + n.Text
		case tn.MinorSize:
			style = "font-size: " + strconv.Itoa(sizePercent(n.Text)) + "%"
		case tn.MinorFont:
			style = "font-family: " + n.Text
		default:
			r.inlines(n.Children)
			return
		}
		r.out.WriteString(`<span style="`)
		r.text(style)
		r.out.WriteString(`">`)
		r.inlines(n.Children)
		r.out.WriteString("</span>")

	case tn.MajorLink:
		r.link(n)

	case tn.MajorSpecial:
		switch n.Minor {
		case tn.MinorLineBreak:
			r.out.WriteString("<br />")
		case tn.MinorSmiley:
			r.smiley(n.Text)
		case tn.MinorImage:
			r.image(n)
		default:
			r.inlines(n.Children)
		}

	default:
		r.blocks(n.Children)
	}
}

func (r htmlRenderer) link(n *tn.Node) {
	target, ok := resolveLink(n, r.ctx, r.opts)
	if !ok {
		r.failedLink(n)
		return
	}

	class := ""
	if n.Minor == tn.MinorUser {
		class = userClass(target)
	}
	r.anchor(target.URL, class)
	if len(n.Children) > 0 {
		r.inlines(n.Children)
	} else {
		r.text(target.Name)
	}
	r.out.WriteString("</a>")
}

// failedLink shows a link that cannot be rendered as such.
func (r htmlRenderer) failedLink(n *tn.Node) {
	r.out.WriteString(`<span class="tfailedlink">`)
	if len(n.Children) > 0 {
		r.inlines(n.Children)
	} else {
		r.text(bbcode.TagName(n.Major, n.Minor) + " " + n.Text)
	}
	r.out.WriteString("</span>")
}

func (r htmlRenderer) image(n *tn.Node) {
	if n.Text == "" || !isAllowedURL(n.Text) {
		r.failedLink(n)
		return
	}
	r.out.WriteString(`<img src="`)
	r.text(n.Text)
	r.out.WriteString(`" alt="`)
	r.text(n.TextContent())
	r.out.WriteString(`" />`)
}

func (r htmlRenderer) smiley(name string) {
	def, ok := inline.Default.SmileyByName(name)
	if !ok {
		r.text(":" + name + ":")
		return
	}
	r.out.WriteString(`<img src="`)
	r.text(r.opts.BaseURL + def.Image)
	r.out.WriteString(`" width="` + strconv.Itoa(def.Width) + `" height="` + strconv.Itoa(def.Height) + `" alt=":`)
	r.text(def.Name)
	r.out.WriteString(`:" />`)
}

// sizePercent converts a size delta "+N"/"-N" into a font size percentage.
// Each step scales by 100/80 up or 80/100 down.
func sizePercent(delta string) int {
	n, err := strconv.Atoi(delta)
	if err != nil {
		return 100
	}
	n = max(-bbcode.MaxSizeDelta, min(bbcode.MaxSizeDelta, n))

	p := 100
	for ; n > 0; n-- {
		p = p * 100 / 80
	}
	for ; n < 0; n++ {
		p = p * 80 / 100
	}
	return p
}
