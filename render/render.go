// Package render converts stored forum text into its output formats.
//
// Stored text has the form "<sourceformat>:<payload>" where the source format is
// "text", "code[:language]" or "forum<flags>". The output format is one of
// "html", "forum<flags>", "mail", "news" or "text", optionally preceded by
// transformation prefixes ("quote:", "noquote:", "break:", "abstract:", "force:").
package render

import (
	"strings"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	"github.com/stefanreuther/c2ng-sub017/inline"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// Special output formats handled without parsing.
const (
	FormatRaw    = "raw"
	FormatSource = "format"
)

// Transformation prefixes of an output format.
const (
	PrefixQuote    = "quote:"
	PrefixNoQuote  = "noquote:"
	PrefixBreak    = "break:"
	PrefixAbstract = "abstract:"
	PrefixForce    = "force:"
)

var prefixes = []string{PrefixQuote, PrefixNoQuote, PrefixBreak, PrefixAbstract, PrefixForce}

// Format is a parsed output format.
type Format struct {
	// Transforms lists the transformation prefixes in order of appearance.
	Transforms []string

	// Target is the output format without prefixes.
	Target string
}

// ParseFormat splits an output format into transformations and target.
// It reports false if the target is not a known output format.
func ParseFormat(format string) (Format, bool) {
	var f Format
	for {
		found := false
		for _, p := range prefixes {
			if strings.HasPrefix(format, p) {
				f.Transforms = append(f.Transforms, p)
				format = format[len(p):]
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	f.Target = format

	switch {
	case format == "html", format == "mail", format == "news", format == "text":
		return f, true
	case strings.HasPrefix(format, "forum"):
		return f, true
	}
	return f, false
}

// Has reports whether the format contains the given transformation.
func (f Format) Has(prefix string) bool {
	for _, t := range f.Transforms {
		if t == prefix {
			return true
		}
	}
	return false
}

// SplitStored splits stored text into source format and payload.
// Text without a source format is treated as "text".
func SplitStored(stored string) (string, string) {
	format, payload, found := strings.Cut(stored, ":")
	if !found {
		return "text", stored
	}
	return format, payload
}

// ForumKinds returns the auto-detection kinds selected by the flags of a
// "forum<flags>" source format. Unknown flags are ignored.
func ForumKinds(format string) inline.Kind {
	var kinds inline.Kind
	for _, c := range strings.TrimPrefix(format, "forum") {
		switch c {
		case 'S':
			kinds |= inline.KindSmiley
		case 'L':
			kinds |= inline.KindLink
		}
	}
	return kinds
}

// Render converts stored text into the output format opts.Format.
// Rendering never fails; an unknown output format yields an error message as result.
func Render(stored string, ctx *Context, opts Options) string {
	if opts.Format == FormatRaw {
		return stored
	}

	source, payload := SplitStored(stored)
	if opts.Format == FormatSource {
		return source
	}

	f, ok := ParseFormat(opts.Format)
	if !ok {
		return "ERROR: invalid format '" + opts.Format + "'"
	}
	if f.Target == source && onlyForce(f) {
		return payload
	}

	tree := Parse(source, payload, nil)
	Transform(tree, f, ctx)

	switch {
	case f.Target == "html":
		return RenderHTML(tree, ctx, opts)
	case f.Target == "mail":
		return RenderMail(tree, ctx, opts)
	case f.Target == "news":
		return RenderNews(tree, ctx, opts)
	case f.Target == "text":
		return RenderText(tree, ctx, opts)
	default:
		return RenderBBCode(tree)
	}
}

func onlyForce(f Format) bool {
	for _, t := range f.Transforms {
		if t != PrefixForce {
			return false
		}
	}
	return true
}

// Transform applies the transformations of f to the tree, in order.
func Transform(root *tn.Node, f Format, ctx *Context) {
	for _, t := range f.Transforms {
		switch t {
		case PrefixQuote:
			Quote(root, ctx)
		case PrefixNoQuote:
			root.StripQuotes()
		case PrefixBreak:
			Break(root)
		case PrefixAbstract:
			Abstract(root)
		}
	}
}

// Parse builds the tree for a payload in the given source format.
// Forum markup may be checked against links; warnings go to warns, which may be nil.
func Parse(source string, payload string, warns *bbcode.Warnings) *tn.Node {
	return ParseWithLinks(source, payload, nil, warns)
}

// ParseWithLinks is [Parse] with link validation.
func ParseWithLinks(source string, payload string, links bbcode.LinkParser, warns *bbcode.Warnings) *tn.Node {
	switch {
	case strings.HasPrefix(source, "forum"):
		return bbcode.Parse(payload, bbcode.Options{Kinds: ForumKinds(source), Links: links}, warns)
	case source == "code":
		return parseCode(payload)
	default:
		return parsePlain(payload)
	}
}

// parsePlain splits text into paragraphs at blank lines;
// single line breaks are kept as line break nodes.
func parsePlain(text string) *tn.Node {
	root := tn.New(tn.MajorGroup, tn.MinorRoot, "")
	var para *tn.Node

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			para = nil
			continue
		}
		if para == nil {
			para = tn.New(tn.MajorParagraph, tn.MinorNormal, "")
			root.Append(para)
		} else {
			para.Append(tn.New(tn.MajorSpecial, tn.MinorLineBreak, ""))
		}
		para.Append(tn.NewPlain(line))
	}
	return root
}

// parseCode produces a single code paragraph. A leading "<lang>:" selects
// the language if lang is a short word.
func parseCode(text string) *tn.Node {
	var lang string
	if l, rest, found := strings.Cut(text, ":"); found && isLanguage(l) {
		lang, text = l, rest
	}

	root := tn.New(tn.MajorGroup, tn.MinorRoot, "")
	if text != "" {
		para := tn.New(tn.MajorParagraph, tn.MinorCode, lang)
		para.Append(tn.NewPlain(text))
		root.Append(para)
	}
	return root
}

func isLanguage(s string) bool {
	if s == "" || len(s) > 16 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || c == '+' || c == '-') {
			return false
		}
	}
	return true
}
