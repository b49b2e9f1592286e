package bbcode

// Warning describes a problem found during parsing. Warnings are informational only.
type Warning struct {
	// Issue defines the type of the problem.
	Issue Issue

	// Token is the offending text: usually a tag name, or the raw text of a suspicious tag.
	Token string

	// Extra is additional context, e.g. the target of a bad link.
	Extra string

	// Pos defines the byte position in the input string at which the problem occurred.
	Pos int
}

// Warnings maintains the list of issues found during a parse.
// At most one Warning is kept per position, except [IssueNoOwnText] which is always kept.
type Warnings struct {
	list []Warning
}

// List returns the recorded Warnings in order of discovery.
func (w *Warnings) List() []Warning {
	return w.list
}

// Len returns the number of recorded Warnings.
func (w *Warnings) Len() int {
	return len(w.list)
}

// Add appends new [Warning] item to the inner list unless one is already
// recorded at the same position.
func (w *Warnings) Add(item Warning) {
	if item.Issue != IssueNoOwnText {
		for _, existing := range w.list {
			if existing.Issue != IssueNoOwnText && existing.Pos == item.Pos {
				return
			}
		}
	}
	w.list = append(w.list, item)
}

// Reset discards all recorded Warnings.
func (w *Warnings) Reset() {
	w.list = w.list[:0]
}
