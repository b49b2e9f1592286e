package inline

// SmileyDefinition describes one entry of the fixed smiley table.
type SmileyDefinition struct {
	// Name is the canonical name, used in the ":name:" form.
	Name string `json:"name"`

	// Symbol is the primary symbolic alias, e.g. ":-)". May be empty.
	Symbol string `json:"symbol"`

	// Alternative is the secondary, usually shorter, symbolic alias, e.g. ":)". May be empty.
	Alternative string `json:"alternative"`

	// Image is the image path relative to the site root.
	Image string `json:"image"`

	// Width and Height are the pixel dimensions of the image.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// smileys is the closed smiley table.
//
// Symbolic aliases must not start with a letter used by a link protocol name,
// otherwise the protocol check would see a smiley anchor inside the scheme.
var smileys = []SmileyDefinition{
	{"smile", ":-)", ":)", "res/smileys/smile.png", 16, 16},
	{"sad", ":-(", ":(", "res/smileys/sad.png", 16, 16},
	{"wink", ";-)", ";)", "res/smileys/wink.png", 16, 16},
	{"biggrin", ":-D", ":D", "res/smileys/biggrin.png", 16, 16},
	{"razz", ":-P", ":P", "res/smileys/razz.png", 16, 16},
	{"neutral", ":-|", ":|", "res/smileys/neutral.png", 16, 16},
	{"surprised", ":-O", ":O", "res/smileys/surprised.png", 16, 16},
	{"confused", ":-S", "", "res/smileys/confused.png", 16, 16},
	{"cry", ":'(", "", "res/smileys/cry.png", 16, 16},
	{"cool", "B-)", "", "res/smileys/cool.png", 16, 16},
	{"eek", "8-O", "", "res/smileys/eek.png", 16, 16},
	{"rolleyes", "8-)", "", "res/smileys/rolleyes.png", 16, 16},
	{"lol", "", "", "res/smileys/lol.png", 16, 16},
	{"mad", "", "", "res/smileys/mad.png", 16, 16},
	{"redface", "", "", "res/smileys/redface.png", 16, 16},
	{"evil", "", "", "res/smileys/evil.png", 16, 16},
	{"twisted", "", "", "res/smileys/twisted.png", 16, 16},
	{"idea", "", "", "res/smileys/idea.png", 16, 16},
	{"question", "", "", "res/smileys/question.png", 19, 19},
	{"exclaim", "", "", "res/smileys/exclaim.png", 19, 19},
}

// Smileys returns a copy of the smiley table.
func Smileys() []SmileyDefinition {
	out := make([]SmileyDefinition, len(smileys))
	copy(out, smileys)
	return out
}

// SmileyByName looks up a smiley by its exact, case-sensitive name.
func SmileyByName(name string) (SmileyDefinition, bool) {
	for _, s := range smileys {
		if s.Name == name {
			return s, true
		}
	}
	return SmileyDefinition{}, false
}

// aliases returns the non-empty symbolic forms of the smiley.
func (s SmileyDefinition) aliases() []string {
	out := make([]string, 0, 2)
	if s.Symbol != "" {
		out = append(out, s.Symbol)
	}
	if s.Alternative != "" {
		out = append(out, s.Alternative)
	}
	return out
}
