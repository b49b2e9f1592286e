package bbcode

import (
	"strings"

	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// closeNode pops the innermost open node and attaches it to its parent if it is worth keeping.
func closeNode(state *parserState) {
	f := state.pop()
	n := f.node

	keep := true
	switch n.Major {
	case tn.MajorInline, tn.MajorInlineAttr:
		keep = len(n.Children) > 0

	case tn.MajorLink:
		completeLink(state, n, f.pos)

	case tn.MajorSpecial:
		if n.Minor == tn.MinorImage {
			completeLink(state, n, f.pos)
		}

	case tn.MajorParagraph:
		if n.Minor != tn.MinorCode {
			trimParagraph(n)
		}
		keep = len(n.Children) > 0 || n.Minor == tn.MinorBreak

	case tn.MajorGroup:
		keep = len(n.Children) > 0
	}

	if keep {
		state.peek().Append(n)
	}
}

// closeAndWarn closes the innermost open node, reporting a missing closing tag
// if the node was opened by a tag.
func closeAndWarn(state *parserState) {
	f := state.stack[len(state.stack)-1]
	if name := TagName(f.node.Major, f.node.Minor); name != "" && f.pos != synthesized {
		state.warn(IssueMissingClose, name, "", f.pos)
	}
	closeNode(state)
}

// closeTo closes all nodes above stack index idx with a warning, then the node at idx.
func closeTo(state *parserState, idx int, warnTarget bool) {
	for len(state.stack)-1 > idx {
		closeAndWarn(state)
	}
	if warnTarget {
		closeAndWarn(state)
	} else {
		closeNode(state)
	}
}

// closeParagraph closes everything above the innermost group.
func closeParagraph(state *parserState) {
	for state.peek().Major != tn.MajorGroup {
		closeAndWarn(state)
	}
}

// closeAll closes everything but the root.
func closeAll(state *parserState) {
	for len(state.stack) > 1 {
		closeAndWarn(state)
	}
}

// trimParagraph removes trailing whitespace from the paragraph's last text node.
func trimParagraph(n *tn.Node) {
	last := n.LastChild()
	if last == nil || last.Major != tn.MajorPlain {
		return
	}
	last.Text = strings.TrimRight(last.Text, " \t\r\n")
	if last.Text == "" {
		n.Children[len(n.Children)-1] = nil
		n.Children = n.Children[:len(n.Children)-1]
	}
}

// completeLink fills in the target of a link or image written without attribute,
// and validates the target.
//
// "[url]target[/url]" is stored in its shortened form: the target in Text, no children.
// If the content contains markup, the children are kept as link text.
func completeLink(state *parserState, n *tn.Node, pos int) {
	if n.Text == "" {
		n.Text = strings.TrimSpace(n.TextContent())
		if n.IsPlainOnly() {
			n.Children = nil
		}
	}
	validateLink(state, n, pos)
}

// validateLink reports [IssueBadLink] for empty targets and semantic links that do not resolve.
func validateLink(state *parserState, n *tn.Node, pos int) {
	name := TagName(n.Major, n.Minor)
	if n.Text == "" {
		state.warn(IssueBadLink, name, "", pos)
		return
	}

	links := state.opts.Links
	if links == nil || n.Major != tn.MajorLink {
		return
	}

	var ok bool
	switch n.Minor {
	case tn.MinorThread:
		_, ok = links.ParseTopicLink(n.Text)
	case tn.MinorPost:
		_, ok = links.ParseMessageLink(n.Text)
	case tn.MinorGame:
		_, ok = links.ParseGameLink(n.Text)
	case tn.MinorUser:
		_, ok = links.ParseUserLink(n.Text)
	case tn.MinorForum:
		_, ok = links.ParseForumLink(n.Text)
	default:
		ok = true
	}
	if !ok {
		state.warn(IssueBadLink, name, n.Text, pos)
	}
}

// containsLink reports whether any descendant of n is a link.
func containsLink(n *tn.Node) bool {
	for _, c := range n.Children {
		if c.Major == tn.MajorLink || containsLink(c) {
			return true
		}
	}
	return false
}
