// Package textnode defines the document tree produced by the forum parser
// and consumed by the renderers.
package textnode

import (
	"strconv"
	"strings"
)

// Major determines the category of a [Node] and which Minor constants apply.
type Major uint8

const (
	MajorPlain Major = iota
	MajorInline
	MajorInlineAttr
	MajorLink
	MajorParagraph
	MajorGroup
	MajorSpecial
)

// Minor is the kind of a Node within its Major category.
type Minor uint8

// Minors for MajorPlain.
const (
	MinorPlain Minor = iota
)

// Minors for MajorInline.
const (
	MinorBold Minor = iota
	MinorItalic
	MinorStrikeThrough
	MinorUnderline
	MinorMonospace
)

// Minors for MajorInlineAttr. Text holds the canonicalized attribute.
const (
	MinorColor Minor = iota // "#rrggbb"
	MinorSize               // "+N" or "-N"
	MinorFont               // font name
)

// Minors for MajorLink. Text holds the raw link target.
const (
	MinorURL Minor = iota
	MinorEmail
	MinorThread
	MinorPost
	MinorGame
	MinorUser
	MinorForum
)

// Minors for MajorParagraph.
const (
	MinorNormal   Minor = iota
	MinorCode           // Text holds the language
	MinorCentered       //
	MinorBreak          // empty marker paragraph
	MinorFragment       // partial paragraph, rendered without block decoration
)

// Minors for MajorGroup.
const (
	MinorRoot     Minor = iota
	MinorQuote          // Text holds the attribution
	MinorList           // Text holds the numbering style
	MinorListItem       //
)

// Minors for MajorSpecial.
const (
	MinorLineBreak Minor = iota
	MinorImage         // Text holds the image URL, children the alt text
	MinorSmiley        // Text holds the smiley name
)

// Node is one node of the document tree.
// A Node exclusively owns its children; trees never share nodes.
type Node struct {
	Major    Major
	Minor    Minor
	Text     string
	Children []*Node
}

// New creates a childless node.
func New(major Major, minor Minor, text string) *Node {
	return &Node{Major: major, Minor: minor, Text: text}
}

// NewPlain creates a plain text node.
func NewPlain(text string) *Node {
	return New(MajorPlain, MinorPlain, text)
}

// Is reports whether the node has the given major and minor kind.
func (n *Node) Is(major Major, minor Minor) bool {
	return n.Major == major && n.Minor == minor
}

// Append adds child as the last child of n.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// IsInline reports whether the node may appear inside a paragraph.
func (n *Node) IsInline() bool {
	switch n.Major {
	case MajorPlain, MajorInline, MajorInlineAttr, MajorLink, MajorSpecial:
		return true
	}
	return false
}

// IsPlainOnly reports whether all children are plain text.
func (n *Node) IsPlainOnly() bool {
	for _, c := range n.Children {
		if c.Major != MajorPlain {
			return false
		}
	}
	return true
}

// TextContent returns the concatenated text of all plain descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.appendTextContent(&b)
	return b.String()
}

func (n *Node) appendTextContent(b *strings.Builder) {
	if n.Major == MajorPlain {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.appendTextContent(b)
	}
}

// TextLength returns the number of bytes of text in all plain descendants.
func (n *Node) TextLength() int {
	if n.Major == MajorPlain {
		return len(n.Text)
	}
	total := 0
	for _, c := range n.Children {
		total += c.TextLength()
	}
	return total
}

// IsSimpleList reports whether every child of a list is an item consisting of
// exactly one normal paragraph.
func (n *Node) IsSimpleList() bool {
	for _, item := range n.Children {
		if !item.Is(MajorGroup, MinorListItem) || len(item.Children) != 1 {
			return false
		}
		if !item.Children[0].Is(MajorParagraph, MinorNormal) {
			return false
		}
	}
	return true
}

// StripQuotes removes all quote groups among the direct children.
func (n *Node) StripQuotes() {
	kept := n.Children[:0]
	for _, c := range n.Children {
		if !c.Is(MajorGroup, MinorQuote) {
			kept = append(kept, c)
		}
	}
	clear(n.Children[len(kept):])
	n.Children = kept
}

// IsQuoteOnly reports whether n has children and all of them are quotes.
func (n *Node) IsQuoteOnly() bool {
	if len(n.Children) == 0 {
		return false
	}
	for _, c := range n.Children {
		if !c.Is(MajorGroup, MinorQuote) {
			return false
		}
	}
	return true
}

// Equal reports whether two trees are structurally identical.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Major != other.Major || n.Minor != other.Minor || n.Text != other.Text {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String returns a compact one-line dump of the tree, for diagnostics and tests.
//
// Example: root(p("a") list(item(p("b")))).
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	if n.Major == MajorPlain {
		b.WriteString(strconv.Quote(n.Text))
		return
	}

	b.WriteString(n.Name())
	if n.Text != "" {
		b.WriteByte('=')
		b.WriteString(strconv.Quote(n.Text))
	}
	b.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		c.dump(b)
	}
	b.WriteByte(')')
}

var names = map[Major][]string{
	MajorInline:     {"b", "i", "s", "u", "tt"},
	MajorInlineAttr: {"color", "size", "font"},
	MajorLink:       {"url", "email", "thread", "post", "game", "user", "forum"},
	MajorParagraph:  {"p", "code", "center", "break", "fragment"},
	MajorGroup:      {"root", "quote", "list", "item"},
	MajorSpecial:    {"nl", "img", "smiley"},
}

// Name returns a short name for the node kind, as used by String.
func (n *Node) Name() string {
	if n.Major == MajorPlain {
		return "plain"
	}
	if list := names[n.Major]; int(n.Minor) < len(list) {
		return list[n.Minor]
	}
	return "unknown" + strconv.Itoa(int(n.Major)) + "." + strconv.Itoa(int(n.Minor))
}
