package bbcode

// Issue defines types of problems found while parsing forum markup.
type Issue int

const (
	// IssueMissingClose means a tag was still open when its enclosing block ended.
	IssueMissingClose Issue = iota

	// IssueTagNotOpen means a closing tag had no matching opening tag.
	IssueTagNotOpen

	// IssueBadLink means a link target could not be resolved.
	IssueBadLink

	// IssueSuspiciousText means something looked like a tag but is not one, and was kept as text.
	IssueSuspiciousText

	// IssueNoOwnText means the message consists of quotes only.
	IssueNoOwnText

	// NumIssues is the total number of Issue kinds. Should be placed as last const.
	NumIssues
)

var mapIssueToName = [NumIssues]string{
	IssueMissingClose:   "Missing Close",
	IssueTagNotOpen:     "Tag Not Open",
	IssueBadLink:        "Bad Link",
	IssueSuspiciousText: "Suspicious Text",
	IssueNoOwnText:      "No Own Text",
}

// String returns the human-readable name of the Issue.
func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Unknown Issue"
	}
	return mapIssueToName[i]
}
