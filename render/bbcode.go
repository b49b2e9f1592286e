package render

import (
	"sort"
	"strings"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	"github.com/stefanreuther/c2ng-sub017/inline"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// RenderBBCode serializes a tree back to forum markup.
// Parsing the result yields an equivalent tree.
func RenderBBCode(n *tn.Node) string {
	var b strings.Builder
	r := bbRenderer{out: &b, rec: inline.Default}
	if n.IsInline() {
		r.inline(n)
	} else {
		r.block(n)
	}
	return b.String()
}

type bbRenderer struct {
	out *strings.Builder
	rec *inline.Recognizer
}

func (r bbRenderer) blocks(children []*tn.Node) {
	for i, c := range children {
		if i > 0 {
			r.out.WriteString("\n\n")
		}
		r.block(c)
	}
}

func (r bbRenderer) inlines(children []*tn.Node) {
	for _, c := range children {
		r.inline(c)
	}
}

func (r bbRenderer) block(n *tn.Node) {
	switch n.Major {
	case tn.MajorParagraph:
		switch n.Minor {
		case tn.MinorCode:
			text := n.TextContent()
			r.openTag(bbcode.TagCode, n.Text)
			if strings.HasPrefix(text, "\n") || strings.HasPrefix(text, "\r") {
				r.out.WriteByte('\n')
			}
			r.out.WriteString(text)
			r.closeTag(bbcode.TagCode)
		case tn.MinorCentered:
			r.openTag("center", "")
			r.inlines(n.Children)
			r.closeTag("center")
		case tn.MinorBreak:
			r.openTag(bbcode.TagBreak, "")
		default:
			r.inlines(n.Children)
		}

	case tn.MajorGroup:
		switch n.Minor {
		case tn.MinorQuote:
			r.openTag("quote", n.Text)
			r.blocks(n.Children)
			r.closeTag("quote")
		case tn.MinorList:
			r.openTag("list", n.Text)
			for _, item := range n.Children {
				r.out.WriteByte('\n')
				if item.Is(tn.MajorGroup, tn.MinorListItem) {
					r.openTag(bbcode.TagListItem, "")
					r.blocks(item.Children)
				} else {
					r.block(item)
				}
			}
			r.out.WriteByte('\n')
			r.closeTag("list")
		default:
			r.blocks(n.Children)
		}

	default:
		r.inline(n)
	}
}

func (r bbRenderer) inline(n *tn.Node) {
	switch n.Major {
	case tn.MajorPlain:
		r.plain(n.Text)

	case tn.MajorInline, tn.MajorInlineAttr:
		name := bbcode.TagName(n.Major, n.Minor)
		r.openTag(name, n.Text)
		r.inlines(n.Children)
		r.closeTag(name)

	case tn.MajorLink:
		r.link(n)

	case tn.MajorSpecial:
		switch n.Minor {
		case tn.MinorLineBreak:
			r.openTag(bbcode.TagNewLine, "")
		case tn.MinorSmiley:
			r.out.WriteString("[:" + n.Text + ":]")
		case tn.MinorImage:
			r.link(n)
		default:
			r.inlines(n.Children)
		}

	default:
		r.blocks(n.Children)
	}
}

// link writes a link or image, in the "[url]target[/url]" form if possible.
func (r bbRenderer) link(n *tn.Node) {
	name := bbcode.TagName(n.Major, n.Minor)
	if len(n.Children) == 0 && r.canShorten(n.Text) {
		r.openTag(name, "")
		r.out.WriteString(n.Text)
		r.closeTag(name)
		return
	}

	if len(n.Children) == 0 && !attrWritable(n.Text) && canEscapeTarget(n.Text) {
		r.openTag(name, "")
		r.plain(n.Text)
		r.closeTag(name)
		return
	}

	r.openTag(name, n.Text)
	r.inlines(n.Children)
	r.closeTag(name)
}

// attrWritable reports whether an attribute form reproduces value.
// A value containing `"]` always contains ']', which ends the unquoted form as well.
// Links fall back to escaped content for such targets; other tags truncate the value.
func attrWritable(value string) bool {
	return !strings.Contains(value, "\"]")
}

// canEscapeTarget reports whether a link target survives as escaped tag content.
func canEscapeTarget(target string) bool {
	return target != "" && target == strings.TrimSpace(target) && !strings.Contains(target, "\n")
}

// canShorten reports whether a link target survives as tag content.
func (r bbRenderer) canShorten(target string) bool {
	if target == "" || target != strings.TrimSpace(target) {
		return false
	}
	if strings.ContainsAny(target, "[]\n") || strings.HasPrefix(target, "@") {
		return false
	}
	if strings.Contains(target, "@") && strings.ContainsAny(target, " \t\r") {
		return false
	}
	_, found := r.rec.Find(target, 0, inline.KindSmiley)
	return !found
}

func (r bbRenderer) openTag(name string, attr string) {
	r.out.WriteByte('[')
	r.out.WriteString(name)
	if attr != "" {
		r.out.WriteByte('=')
		// the unquoted form ends at the first ']', the quoted form at the first `"]`
		if strings.ContainsAny(attr, "[]\n") || strings.HasPrefix(attr, "\"") {
			r.out.WriteByte('"')
			r.out.WriteString(attr)
			r.out.WriteByte('"')
		} else {
			r.out.WriteString(attr)
		}
	}
	r.out.WriteByte(']')
}

func (r bbRenderer) closeTag(name string) {
	r.out.WriteString("[/")
	r.out.WriteString(name)
	r.out.WriteByte(']')
}

// plain writes text, wrapping everything the parser would interpret in [noparse].
// A span is opened on first need and kept open across adjacent needs.
func (r bbRenderer) plain(text string) {
	open := false
	pos := 0
	for _, span := range protectedSpans(text, r.rec) {
		if span.Start > pos {
			if open {
				r.out.WriteString("[/noparse]")
				open = false
			}
			r.out.WriteString(text[pos:span.Start])
		}
		open = r.protected(text[span.Start:span.End], open)
		pos = span.End
	}
	if pos < len(text) {
		if open {
			r.out.WriteString("[/noparse]")
			open = false
		}
		r.out.WriteString(text[pos:])
	}
	if open {
		r.out.WriteString("[/noparse]")
	}
}

// protected writes text inside a [noparse] span and returns whether the span is still open.
// A literal "[/noparse]" is written as "[/[/noparse]noparse]": the inner
// tag closes the span, and the text around it reassembles the literal.
func (r bbRenderer) protected(text string, open bool) bool {
	const closing = "[/noparse]"
	lower := strings.ToLower(text)
	for text != "" {
		if !open {
			r.out.WriteString("[noparse]")
			open = true
		}
		idx := strings.Index(lower, closing)
		if idx < 0 {
			r.out.WriteString(text)
			return open
		}
		r.out.WriteString(text[:idx+2])
		r.out.WriteString(closing)
		r.out.WriteString(text[idx+2 : idx+len(closing)])
		open = false

		text = text[idx+len(closing):]
		lower = lower[idx+len(closing):]
	}
	return open
}

// protectedSpans returns the sorted, disjoint byte ranges of text the parser would
// interpret as something other than plain text.
func protectedSpans(text string, rec *inline.Recognizer) []bbcode.Span {
	var spans []bbcode.Span

	lex := bbcode.NewLexer(text)
	for {
		tok := lex.Next()
		if tok.Kind == bbcode.TokenEOF {
			break
		}
		switch tok.Kind {
		case bbcode.TokenTagStart, bbcode.TokenTagEnd:
			if bbcode.IsKnownTag(tok.Tag) {
				spans = append(spans, tok.Span)
			}
		case bbcode.TokenSmiley, bbcode.TokenAtLink, bbcode.TokenParagraph:
			spans = append(spans, tok.Span)
		}
	}

	for pos := 0; ; {
		m, ok := rec.Find(text, pos, inline.AllKinds)
		if !ok {
			break
		}
		spans = append(spans, bbcode.NewSpan(m.Start, m.Length))
		pos = m.End()
	}

	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			last.End = max(last.End, s.End)
		} else {
			merged = append(merged, s)
		}
	}

	// Text following a span is parsed after "[/noparse]" instead of the span's last
	// byte. That matters when the span ends in a word character: "D@x" is not an
	// at-link, "]@x" is. Keep the rest of the word inside the span.
	out := merged[:0]
	for _, s := range merged {
		if len(out) > 0 && s.Start <= out[len(out)-1].End {
			last := &out[len(out)-1]
			last.End = max(last.End, s.End)
		} else {
			out = append(out, s)
		}
		last := &out[len(out)-1]
		if isWordByte(text[last.End-1]) {
			for last.End < len(text) && (isWordByte(text[last.End]) || text[last.End] == '@') {
				last.End++
			}
		}
	}
	return out
}

func isWordByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9') || b == '_'
}
