package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// Limits of the "abstract:" transformation.
const (
	AbstractMaxBlocks = 2
	AbstractMaxLength = 200
	ellipsis          = "..."
)

// Quote wraps the content of root into a quote attributed from the context.
func Quote(root *tn.Node, ctx *Context) {
	var attr string
	if ctx != nil && ctx.QuoteAuthor != "" {
		attr = ctx.QuoteAuthor
		if ctx.QuoteMessageID != 0 {
			attr += ";" + strconv.FormatInt(ctx.QuoteMessageID, 10)
		}
	}

	q := tn.New(tn.MajorGroup, tn.MinorQuote, attr)
	q.Children = root.Children
	root.Children = []*tn.Node{q}
}

// Break drops everything from the first break paragraph on.
func Break(root *tn.Node) {
	for i, c := range root.Children {
		if c.Is(tn.MajorParagraph, tn.MinorBreak) {
			clear(root.Children[i:])
			root.Children = root.Children[:i]
			return
		}
	}
}

// Abstract reduces root to a short excerpt: quotes are removed, at most
// AbstractMaxBlocks blocks are kept, and text beyond AbstractMaxLength
// is cut at a word boundary and marked with "...".
// Applying Abstract to its own result changes nothing.
func Abstract(root *tn.Node) {
	root.StripQuotes()
	if len(root.Children) > AbstractMaxBlocks {
		clear(root.Children[AbstractMaxBlocks:])
		root.Children = root.Children[:AbstractMaxBlocks]
	}

	if root.TextLength() <= AbstractMaxLength {
		return
	}
	budget := AbstractMaxLength - len(ellipsis)
	cutTree(root, &budget)
}

// cutTree keeps text until the budget is used up, then cuts the text node
// that exceeds it and drops everything after. It reports whether it cut.
func cutTree(n *tn.Node, budget *int) bool {
	for i, c := range n.Children {
		if c.Major == tn.MajorPlain {
			if len(c.Text) <= *budget {
				*budget -= len(c.Text)
				continue
			}
			c.Text = cutText(c.Text, *budget) + ellipsis
			truncateChildren(n, i+1)
			return true
		}
		if cutTree(c, budget) {
			truncateChildren(n, i+1)
			return true
		}
	}
	return false
}

func truncateChildren(n *tn.Node, keep int) {
	clear(n.Children[keep:])
	n.Children = n.Children[:keep]
}

// cutText shortens text to at most limit bytes, preferring to cut at whitespace.
func cutText(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	cut := text[:limit]
	if idx := strings.LastIndexAny(cut, " \t\r\n"); idx >= 0 {
		return strings.TrimRight(cut[:idx], " \t\r\n")
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}
