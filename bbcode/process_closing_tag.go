package bbcode

import tn "github.com/stefanreuther/c2ng-sub017/textnode"

func processClosingTag(state *parserState, tok Token) {
	pos := tok.Span.Start
	raw := state.lex.Raw(tok)

	switch tok.Tag {
	case TagNoParse, TagCode:
		// their closing tags are consumed by the opening tag's scan
		state.warn(IssueTagNotOpen, tok.Tag, "", pos)
		addText(state, raw, pos)
		return

	case TagListItem, TagBreak, TagNewLine:
		addSuspicious(state, tok)
		return
	}

	tag, ok := lookupTag(tok.Tag)
	if !ok {
		addSuspicious(state, tok)
		return
	}

	switch tag.Major {
	case tn.MajorInline, tn.MajorInlineAttr, tn.MajorLink, tn.MajorSpecial:
		flushText(state)
		if idx := state.findInline(tag.Major, tag.Minor); idx >= 0 {
			closeTo(state, idx, false)
			return
		}
		state.warn(IssueTagNotOpen, tok.Tag, "", pos)
		if !wrapParagraph(state, tag) {
			addText(state, raw, pos)
		}

	case tn.MajorParagraph:
		flushText(state)
		if idx := state.findParagraph(); idx >= 0 && state.stack[idx].node.Is(tag.Major, tag.Minor) {
			closeTo(state, idx, false)
			return
		}
		state.warn(IssueTagNotOpen, tok.Tag, "", pos)

	case tn.MajorGroup:
		flushText(state)
		if idx := state.findGroup(tag.Minor); idx >= 0 {
			closeTo(state, idx, false)
			return
		}
		state.warn(IssueTagNotOpen, tok.Tag, "", pos)
	}
}

// wrapParagraph handles "text[/b]" where the "[b]" is missing: the formatting is
// applied from the beginning of the paragraph. This is done for plain inline
// formatting and links only; it reports whether the tag was consumed.
func wrapParagraph(state *parserState, tag tagInfo) bool {
	if tag.Major != tn.MajorInline && tag.Major != tn.MajorLink {
		return false
	}
	idx := state.findParagraph()
	if idx < 0 {
		return false
	}

	// the open inline nodes become part of the paragraph, so their links count too
	para := state.stack[idx].node
	if tag.Major == tn.MajorLink {
		for i := len(state.stack) - 1; i >= idx; i-- {
			n := state.stack[i].node
			if (i > idx && n.Major == tn.MajorLink) || containsLink(n) {
				return false
			}
		}
	}

	for len(state.stack)-1 > idx {
		closeAndWarn(state)
	}
	if len(para.Children) == 0 {
		return false
	}

	n := tn.New(tag.Major, tag.Minor, "")
	n.Children = para.Children
	para.Children = []*tn.Node{n}
	if tag.Major == tn.MajorLink {
		completeLink(state, n, state.stack[idx].pos)
	}
	return true
}
