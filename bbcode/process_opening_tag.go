package bbcode

import tn "github.com/stefanreuther/c2ng-sub017/textnode"

func processOpeningTag(state *parserState, tok Token) {
	pos := tok.Span.Start

	switch tok.Tag {
	case TagNoParse:
		processNoParse(state, tok)
		return

	case TagCode:
		processCode(state, tok)
		return

	case TagListItem:
		processListItem(state, tok)
		return

	case TagBreak:
		flushText(state)
		closeParagraph(state)
		state.peek().Append(tn.New(tn.MajorParagraph, tn.MinorBreak, ""))
		return

	case TagNewLine:
		flushText(state)
		state.appendNode(tn.New(tn.MajorSpecial, tn.MinorLineBreak, ""), pos)
		return
	}

	tag, ok := lookupTag(tok.Tag)
	if !ok {
		addSuspicious(state, tok)
		return
	}

	switch tag.Major {
	case tn.MajorInline:
		flushText(state)
		state.ensureParagraph(pos)
		state.push(tn.New(tag.Major, tag.Minor, ""), pos)

	case tn.MajorInlineAttr:
		value, ok := canonicalizeAttr(tag.Minor, tok)
		if !ok {
			addText(state, state.lex.Raw(tok), pos)
			return
		}
		flushText(state)
		state.ensureParagraph(pos)
		state.push(tn.New(tag.Major, tag.Minor, value), pos)

	case tn.MajorLink:
		flushText(state)
		// links do not nest
		if idx := state.findLink(); idx >= 0 {
			closeTo(state, idx, true)
		}
		state.ensureParagraph(pos)
		state.push(tn.New(tag.Major, tag.Minor, tok.Attr), pos)

	case tn.MajorSpecial:
		flushText(state)
		if idx := state.findInline(tag.Major, tag.Minor); idx >= 0 {
			closeTo(state, idx, true)
		}
		state.ensureParagraph(pos)
		state.push(tn.New(tag.Major, tag.Minor, tok.Attr), pos)

	case tn.MajorParagraph:
		flushText(state)
		closeParagraph(state)
		state.push(tn.New(tag.Major, tag.Minor, ""), pos)

	case tn.MajorGroup:
		flushText(state)
		closeParagraph(state)
		state.push(tn.New(tag.Major, tag.Minor, tok.Attr), pos)
		if tag.Minor == tn.MinorList {
			state.push(tn.New(tn.MajorGroup, tn.MinorListItem, ""), pos)
		}
	}
}

// canonicalizeAttr validates the attribute of a color/size/font tag.
func canonicalizeAttr(minor tn.Minor, tok Token) (string, bool) {
	if !tok.HasAttr {
		return "", false
	}
	switch minor {
	case tn.MinorColor:
		return canonicalizeColor(tok.Attr)
	case tn.MinorSize:
		return canonicalizeSize(tok.Attr)
	case tn.MinorFont:
		return canonicalizeFont(tok.Attr)
	}
	return "", false
}
