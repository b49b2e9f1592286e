package bbcode

import tn "github.com/stefanreuther/c2ng-sub017/textnode"

// tagInfo maps a tag name to the node kind it creates.
type tagInfo struct {
	Name  string
	Major tn.Major
	Minor tn.Minor
}

// tags is the closed tag table. Where two names map to the same kind,
// the first one is the canonical name used for output.
var tags = []tagInfo{
	{"b", tn.MajorInline, tn.MinorBold},
	{"i", tn.MajorInline, tn.MinorItalic},
	{"s", tn.MajorInline, tn.MinorStrikeThrough},
	{"strike", tn.MajorInline, tn.MinorStrikeThrough},
	{"u", tn.MajorInline, tn.MinorUnderline},
	{"tt", tn.MajorInline, tn.MinorMonospace},

	{"color", tn.MajorInlineAttr, tn.MinorColor},
	{"size", tn.MajorInlineAttr, tn.MinorSize},
	{"font", tn.MajorInlineAttr, tn.MinorFont},

	{"url", tn.MajorLink, tn.MinorURL},
	{"email", tn.MajorLink, tn.MinorEmail},
	{"thread", tn.MajorLink, tn.MinorThread},
	{"post", tn.MajorLink, tn.MinorPost},
	{"game", tn.MajorLink, tn.MinorGame},
	{"user", tn.MajorLink, tn.MinorUser},
	{"forum", tn.MajorLink, tn.MinorForum},

	{"center", tn.MajorParagraph, tn.MinorCentered},

	{"quote", tn.MajorGroup, tn.MinorQuote},
	{"list", tn.MajorGroup, tn.MinorList},

	{"img", tn.MajorSpecial, tn.MinorImage},
}

// Tag names handled outside the table.
const (
	TagNoParse  = "noparse"
	TagCode     = "code"
	TagListItem = "*"
	TagBreak    = "break"
	TagNewLine  = "nl"
)

// lookupTag finds a tag by lower-case name.
func lookupTag(name string) (tagInfo, bool) {
	for _, t := range tags {
		if t.Name == name {
			return t, true
		}
	}
	return tagInfo{}, false
}

// TagName returns the canonical tag name for a node kind, or "" if the kind has no tag.
func TagName(major tn.Major, minor tn.Minor) string {
	for _, t := range tags {
		if t.Major == major && t.Minor == minor {
			return t.Name
		}
	}
	if major == tn.MajorParagraph && minor == tn.MinorCode {
		return TagCode
	}
	return ""
}

// IsKnownTag reports whether name (lower case) is interpreted as markup by the parser.
func IsKnownTag(name string) bool {
	switch name {
	case TagNoParse, TagCode, TagListItem, TagBreak, TagNewLine:
		return true
	}
	_, ok := lookupTag(name)
	return ok
}
