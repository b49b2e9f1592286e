package bbcode

import (
	"strings"

	"github.com/stefanreuther/c2ng-sub017/inline"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// synthesized is the frame position of nodes the parser opened on its own.
const synthesized = -1

// frame is an open node together with the input position of the tag that opened it.
type frame struct {
	node *tn.Node
	pos  int
}

type parserState struct {
	lex   *Lexer
	rec   *inline.Recognizer
	opts  Options
	warns *Warnings

	// stack of open nodes; the root group is always at the bottom
	stack []frame

	// pending free text, not yet run through the recognizer
	text    strings.Builder
	textPos int
}

func newParserState(input string, opts Options, warns *Warnings) *parserState {
	rec := opts.Recognizer
	if rec == nil {
		rec = inline.Default
	}
	if warns == nil {
		warns = &Warnings{}
	}

	return &parserState{
		lex:   NewLexer(input),
		rec:   rec,
		opts:  opts,
		warns: warns,
		// root node should always be present
		stack: []frame{{node: tn.New(tn.MajorGroup, tn.MinorRoot, ""), pos: 0}},
	}
}

func (s *parserState) peek() *tn.Node {
	return s.stack[len(s.stack)-1].node
}

func (s *parserState) push(node *tn.Node, pos int) {
	s.stack = append(s.stack, frame{node: node, pos: pos})
}

func (s *parserState) pop() frame {
	last := len(s.stack) - 1
	f := s.stack[last]
	s.stack = s.stack[:last]
	return f
}

func (s *parserState) root() *tn.Node {
	return s.stack[0].node
}

func (s *parserState) warn(issue Issue, token string, extra string, pos int) {
	s.warns.Add(Warning{Issue: issue, Token: token, Extra: extra, Pos: pos})
}

// findParagraph returns the stack index of the innermost open paragraph, or -1.
// Only inline nodes may sit above a paragraph, so the search stops at the first block.
func (s *parserState) findParagraph() int {
	for i := len(s.stack) - 1; i > 0; i-- {
		n := s.stack[i].node
		if n.Major == tn.MajorParagraph {
			return i
		}
		if !n.IsInline() {
			return -1
		}
	}
	return -1
}

// findInline returns the stack index of the innermost open node of the given kind
// that is reachable without crossing a paragraph, or -1.
func (s *parserState) findInline(major tn.Major, minor tn.Minor) int {
	for i := len(s.stack) - 1; i > 0; i-- {
		n := s.stack[i].node
		if n.Is(major, minor) {
			return i
		}
		if !n.IsInline() {
			return -1
		}
	}
	return -1
}

// findLink returns the stack index of the open link, or of the open image if
// there is no link, or -1. An image inside a link yields the link.
// Link content is never auto-linked and links do not nest.
func (s *parserState) findLink() int {
	image := -1
	for i := len(s.stack) - 1; i > 0; i-- {
		n := s.stack[i].node
		if n.Major == tn.MajorLink {
			return i
		}
		if image < 0 && n.Is(tn.MajorSpecial, tn.MinorImage) {
			image = i
		}
		if !n.IsInline() {
			break
		}
	}
	return image
}

// findGroup returns the stack index of the innermost open group of the given kind, or -1.
func (s *parserState) findGroup(minor tn.Minor) int {
	for i := len(s.stack) - 1; i > 0; i-- {
		if s.stack[i].node.Is(tn.MajorGroup, minor) {
			return i
		}
	}
	return -1
}

// atParagraphStart reports whether text added now would be the first content
// of a normal paragraph. This is also the case for a paragraph left empty by
// dropped formatting, as in "[font=x][/font] text".
func (s *parserState) atParagraphStart() bool {
	idx := s.findParagraph()
	if idx < 0 {
		return true
	}
	p := s.stack[idx].node
	return idx == len(s.stack)-1 && p.Minor == tn.MinorNormal && len(p.Children) == 0
}

// ensureParagraph opens a normal paragraph if the innermost open node is a group.
func (s *parserState) ensureParagraph(pos int) {
	if s.peek().Major == tn.MajorGroup {
		s.push(tn.New(tn.MajorParagraph, tn.MinorNormal, ""), pos)
	}
}

// appendNode adds an inline node to the current paragraph.
func (s *parserState) appendNode(node *tn.Node, pos int) {
	s.ensureParagraph(pos)
	s.peek().Append(node)
}

// appendPlain adds text to the current paragraph, merging with a preceding text node.
func (s *parserState) appendPlain(text string, pos int) {
	if text == "" {
		return
	}
	s.ensureParagraph(pos)

	parent := s.peek()
	if last := parent.LastChild(); last != nil && last.Major == tn.MajorPlain {
		last.Text += text
		return
	}
	parent.Append(tn.NewPlain(text))
}
