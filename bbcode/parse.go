package bbcode

import (
	"strings"

	"github.com/stefanreuther/c2ng-sub017/inline"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// Options configures a parse.
type Options struct {
	// Kinds selects what is auto-detected in free text.
	Kinds inline.Kind

	// Links validates semantic links. If nil, semantic link targets are not checked.
	Links LinkParser

	// Recognizer detects smileys and URLs. If nil, [inline.Default] is used.
	Recognizer *inline.Recognizer
}

// Parse converts forum markup into a document tree rooted at a Root group.
//
// Parse never fails. Malformed markup is repaired and reported through warns,
// which may be nil if the caller is not interested.
func Parse(input string, opts Options, warns *Warnings) *tn.Node {
	state := newParserState(input, opts, warns)

	for {
		tok := state.lex.Next()

		switch tok.Kind {
		case TokenEOF:
			flushText(state)
			closeAll(state)
			if root := state.root(); root.IsQuoteOnly() {
				state.warn(IssueNoOwnText, "", "", 0)
			}
			return state.root()

		case TokenText:
			addText(state, state.lex.Raw(tok), tok.Span.Start)

		case TokenParagraph:
			flushText(state)
			closeParagraph(state)

		case TokenTagStart:
			processOpeningTag(state, tok)

		case TokenTagEnd:
			processClosingTag(state, tok)

		case TokenSmiley:
			processSmiley(state, tok)

		case TokenAtLink:
			processAtLink(state, tok)
		}
	}
}

// addText buffers free text. Consecutive text is recognized as a whole,
// so that a URL split across lexer tokens is still found.
func addText(state *parserState, text string, pos int) {
	if state.text.Len() == 0 {
		state.textPos = pos
	}
	state.text.WriteString(text)
}

// addSuspicious buffers the raw text of a token that looks like markup but is not.
func addSuspicious(state *parserState, tok Token) {
	raw := state.lex.Raw(tok)
	state.warn(IssueSuspiciousText, raw, "", tok.Span.Start)
	addText(state, raw, tok.Span.Start)
}

// flushText runs the pending text through the recognizer and appends the result.
// Text that would start a paragraph loses its leading whitespace; if nothing remains,
// no paragraph is opened.
func flushText(state *parserState) {
	if state.text.Len() == 0 {
		return
	}
	text := state.text.String()
	pos := state.textPos
	state.text.Reset()

	if state.atParagraphStart() {
		trimmed := strings.TrimLeft(text, " \t\r\n")
		pos += len(text) - len(trimmed)
		text = trimmed
		if text == "" {
			return
		}
	}
	state.ensureParagraph(pos)

	inLink := state.findLink() >= 0
	at := 0
	for {
		m, ok := state.rec.Find(text, at, state.opts.Kinds)
		if !ok {
			break
		}
		state.appendPlain(text[at:m.Start], pos)

		switch m.Kind {
		case inline.KindLink:
			if inLink {
				state.appendPlain(text[m.Start:m.End()], pos)
			} else {
				state.appendNode(tn.New(tn.MajorLink, tn.MinorURL, m.Text), pos)
			}
		case inline.KindSmiley:
			state.appendNode(tn.New(tn.MajorSpecial, tn.MinorSmiley, m.Text), pos)
		}
		at = m.End()
	}
	state.appendPlain(text[at:], pos)
}
