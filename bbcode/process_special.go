package bbcode

import (
	"strings"

	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// scanRawUntil collects the raw input up to the closing tag named name.
// It reports false if the input ended first.
func scanRawUntil(state *parserState, name string) (string, bool) {
	var b strings.Builder
	for {
		tok := state.lex.Next()
		switch {
		case tok.Kind == TokenEOF:
			return b.String(), false
		case tok.Kind == TokenTagEnd && tok.Tag == name:
			return b.String(), true
		}
		b.WriteString(state.lex.Raw(tok))
	}
}

// processNoParse copies everything up to "[/noparse]" verbatim, bypassing the recognizer.
func processNoParse(state *parserState, tok Token) {
	flushText(state)

	text, closed := scanRawUntil(state, TagNoParse)
	if !closed {
		state.warn(IssueMissingClose, TagNoParse, "", tok.Span.Start)
	}
	state.appendPlain(text, tok.Span.Start)
}

// processCode reads a "[code]" block into its own paragraph.
func processCode(state *parserState, tok Token) {
	flushText(state)
	closeParagraph(state)

	text, closed := scanRawUntil(state, TagCode)
	if !closed {
		state.warn(IssueMissingClose, TagCode, "", tok.Span.Start)
	}

	// the line break following "[code]" is not part of the code
	text = strings.TrimPrefix(text, "\r")
	text = strings.TrimPrefix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return
	}

	para := tn.New(tn.MajorParagraph, tn.MinorCode, tok.Attr)
	para.Append(tn.NewPlain(text))
	state.peek().Append(para)
}

// processListItem starts a new list item.
//
// An item marker in a quote that has no list starts one; this happens when
// only part of a list is quoted. Anywhere else, the marker is text.
func processListItem(state *parserState, tok Token) {
	pos := tok.Span.Start
	for i := len(state.stack) - 1; i > 0; i-- {
		n := state.stack[i].node
		if n.Is(tn.MajorGroup, tn.MinorListItem) {
			flushText(state)
			closeTo(state, i, false)
			state.push(tn.New(tn.MajorGroup, tn.MinorListItem, ""), pos)
			return
		}
		if n.Is(tn.MajorGroup, tn.MinorQuote) {
			flushText(state)
			for len(state.stack)-1 > i {
				closeAndWarn(state)
			}
			state.push(tn.New(tn.MajorGroup, tn.MinorList, ""), synthesized)
			state.push(tn.New(tn.MajorGroup, tn.MinorListItem, ""), synthesized)
			return
		}
	}
	addText(state, state.lex.Raw(tok), pos)
}

// processSmiley handles "[:name:]".
func processSmiley(state *parserState, tok Token) {
	if _, ok := state.rec.SmileyByName(tok.Tag); !ok {
		addText(state, state.lex.Raw(tok), tok.Span.Start)
		return
	}
	flushText(state)
	state.appendNode(tn.New(tn.MajorSpecial, tn.MinorSmiley, tok.Tag), tok.Span.Start)
}

// processAtLink converts "@name" into a user link. Inside a link it is text.
func processAtLink(state *parserState, tok Token) {
	if state.findLink() >= 0 {
		addText(state, state.lex.Raw(tok), tok.Span.Start)
		return
	}
	flushText(state)

	n := tn.New(tn.MajorLink, tn.MinorUser, tok.Attr)
	validateLink(state, n, tok.Span.Start)
	state.appendNode(n, tok.Span.Start)
}
