// Package inline finds smileys and bare URLs in free text.
//
// It is used by the forum parser to auto-linkify text that was not explicitly tagged,
// and by the BBCode renderer to decide which parts of plain text need protection.
package inline

import "strings"

// Kind is a set of recognizable things. A [Match] carries exactly one Kind bit.
type Kind uint8

const (
	// KindSmiley matches ":name:" and symbolic smileys such as ":-)".
	KindSmiley Kind = 1 << iota

	// KindLink matches bare URLs with a known protocol.
	KindLink

	// AllKinds requests every kind.
	AllKinds = KindSmiley | KindLink
)

// Has reports whether all bits of other are in k.
func (k Kind) Has(other Kind) bool {
	return k&other == other
}

// Match describes one recognized span of a text.
type Match struct {
	// Kind is either [KindSmiley] or [KindLink].
	Kind Kind

	// Start is the byte offset of the match.
	Start int

	// Length is the byte length of the match; always > 0.
	Length int

	// Text is the canonical text: the smiley name, or the URL.
	Text string
}

// End returns the exclusive end offset of the match.
func (m Match) End() int {
	return m.Start + m.Length
}

// protocols are the link schemes recognized in free text.
var protocols = []string{"ftp", "http", "https", "mailto", "news", "nntp"}

// Recognizer finds smileys and links in text.
// It holds only constant tables and is safe for concurrent use.
type Recognizer struct {
	smileys []SmileyDefinition

	// named holds ":name:" for each smiley, parallel to smileys.
	named []string

	// anchors are the possible first bytes of any match, per requested kind set.
	smileyAnchors string
	linkAnchors   string
	allAnchors    string
}

// New creates a Recognizer for the built-in smiley table.
func New() *Recognizer {
	r := &Recognizer{smileys: smileys}

	firsts := []byte{':'}
	for _, s := range r.smileys {
		r.named = append(r.named, ":"+s.Name+":")
		for _, alias := range s.aliases() {
			if strings.IndexByte(string(firsts), alias[0]) < 0 {
				firsts = append(firsts, alias[0])
			}
		}
	}

	r.smileyAnchors = string(firsts)
	r.linkAnchors = ":"
	r.allAnchors = r.smileyAnchors
	return r
}

// Default is the shared Recognizer for the built-in table.
var Default = New()

// SmileyByName looks up a smiley definition by its exact name.
func (r *Recognizer) SmileyByName(name string) (SmileyDefinition, bool) {
	for _, s := range r.smileys {
		if s.Name == name {
			return s, true
		}
	}
	return SmileyDefinition{}, false
}

// Find returns the first match of the requested kinds starting at or after startAt.
// It returns false immediately when kinds is empty.
func (r *Recognizer) Find(text string, startAt int, kinds Kind) (Match, bool) {
	if kinds&AllKinds == 0 || startAt < 0 {
		return Match{}, false
	}

	var anchors string
	switch {
	case kinds.Has(AllKinds):
		anchors = r.allAnchors
	case kinds.Has(KindSmiley):
		anchors = r.smileyAnchors
	default:
		anchors = r.linkAnchors
	}

	pos := startAt
	for pos < len(text) {
		idx := strings.IndexAny(text[pos:], anchors)
		if idx < 0 {
			break
		}
		at := pos + idx

		if kinds.Has(KindLink) && text[at] == ':' {
			if m, ok := findLink(text, at); ok && m.Start >= startAt {
				return m, true
			}
		}

		if kinds.Has(KindSmiley) {
			if m, ok := r.findSmiley(text, at); ok {
				return m, true
			}
		}

		pos = at + 1
	}

	return Match{}, false
}

// findSmiley tries all smileys anchored at index at.
func (r *Recognizer) findSmiley(text string, at int) (Match, bool) {
	rest := text[at:]
	for i, s := range r.smileys {
		if rest[0] == ':' && strings.HasPrefix(rest, r.named[i]) {
			return Match{Kind: KindSmiley, Start: at, Length: len(r.named[i]), Text: s.Name}, true
		}

		for _, alias := range s.aliases() {
			if strings.HasPrefix(rest, alias) && checkSmileyBoundary(text, at, alias) {
				return Match{Kind: KindSmiley, Start: at, Length: len(alias), Text: s.Name}, true
			}
		}
	}
	return Match{}, false
}

// checkSmileyBoundary enforces the word boundary rule: a symbolic smiley that starts
// (ends) with an alphanumeric character must not be preceded (followed) by one.
func checkSmileyBoundary(text string, at int, alias string) bool {
	if isAlnum(alias[0]) && at > 0 && isAlnum(text[at-1]) {
		return false
	}

	end := at + len(alias)
	if isAlnum(alias[len(alias)-1]) && end < len(text) && isAlnum(text[end]) {
		return false
	}

	return true
}

// findLink tries to recognize a URL whose protocol ends at the colon at index colon.
func findLink(text string, colon int) (Match, bool) {
	for _, proto := range protocols {
		start := colon - len(proto)
		if start < 0 || !strings.EqualFold(text[start:colon], proto) {
			continue
		}
		if start > 0 && isAlnum(text[start-1]) {
			return Match{}, false
		}

		// <http://...> form extends to the closing bracket
		if start > 0 && text[start-1] == '<' {
			if end, ok := scanAngleURL(text, colon+1); ok && end > colon+1 {
				return Match{Kind: KindLink, Start: start, Length: end - start, Text: text[start:end]}, true
			}
		}

		end := scanURL(text, colon+1)
		if end <= colon+1 {
			return Match{}, false
		}
		return Match{Kind: KindLink, Start: start, Length: end - start, Text: text[start:end]}, true
	}
	return Match{}, false
}

// scanAngleURL finds the closing '>' of a bracketed URL. It gives up at a newline.
func scanAngleURL(text string, from int) (int, bool) {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '>':
			return i, true
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

// scanURL returns the end of a URL starting at from.
// Parentheses are balanced so that "(Foo_(Bar))"-style paths stay whole.
func scanURL(text string, from int) int {
	parens := 0
	delimited := false

	i := from
loop:
	for ; i < len(text); i++ {
		switch c := text[i]; {
		case isSpace(c):
			break loop
		case c == '"' || c == '>':
			delimited = true
			break loop
		case c == '(':
			parens++
		case c == ')':
			if parens == 0 {
				delimited = true
				break loop
			}
			parens--
		}
	}

	end := i
	if !delimited {
		for end > from && strings.IndexByte(".,;:", text[end-1]) >= 0 {
			end--
		}
	}
	return end
}

func isAlnum(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
