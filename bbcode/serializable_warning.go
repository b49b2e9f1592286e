package bbcode

// SerializableWarning is a serializable human-readable description of the issue found in the input.
type SerializableWarning struct {
	// ByteIdx is the position of the starting byte of the erroneous sequence in the input.
	ByteIdx int `json:"byte_idx"`
	// Issue is the name of the issue.
	Issue string `json:"issue"`
	// Token is the offending tag name or text.
	Token string `json:"token,omitempty"`
	// Extra is additional context.
	Extra string `json:"extra,omitempty"`
	// Description is a human-readable description of the issue.
	Description string `json:"description"`
}

type warnSerializer func(w Warning) SerializableWarning

var serializers = [NumIssues]warnSerializer{
	IssueMissingClose:   serializeMissingClose,
	IssueTagNotOpen:     serializeTagNotOpen,
	IssueBadLink:        serializeBadLink,
	IssueSuspiciousText: serializeSuspiciousText,
	IssueNoOwnText:      serializeNoOwnText,
}

// serialize converts a Warning to a SerializableWarning using the appropriate serializer.
func serialize(w Warning) SerializableWarning {
	if w.Issue >= 0 && w.Issue < NumIssues && serializers[w.Issue] != nil {
		return serializers[w.Issue](w)
	}
	return serializeGeneric(w)
}

// Serialize converts all recorded Warnings to SerializableWarnings.
func (w *Warnings) Serialize() []SerializableWarning {
	out := make([]SerializableWarning, 0, len(w.list))
	for _, item := range w.list {
		out = append(out, serialize(item))
	}
	return out
}

func serializeGeneric(w Warning) SerializableWarning {
	return SerializableWarning{
		ByteIdx: w.Pos,
		Issue:   w.Issue.String(),
		Token:   w.Token,
		Extra:   w.Extra,
	}
}

func serializeMissingClose(w Warning) SerializableWarning {
	sw := serializeGeneric(w)
	sw.Description = `tag "[` + w.Token + `]" is not closed; expected "[/` + w.Token + `]".`
	return sw
}

func serializeTagNotOpen(w Warning) SerializableWarning {
	sw := serializeGeneric(w)
	sw.Description = `closing tag "[/` + w.Token + `]" has no matching opening tag.`
	return sw
}

func serializeBadLink(w Warning) SerializableWarning {
	sw := serializeGeneric(w)
	if w.Extra == "" {
		sw.Description = `link "[` + w.Token + `]" has no target.`
	} else {
		sw.Description = `link target "` + w.Extra + `" of "[` + w.Token + `]" does not exist or is not accessible.`
	}
	return sw
}

func serializeSuspiciousText(w Warning) SerializableWarning {
	sw := serializeGeneric(w)
	sw.Description = `"` + w.Token + `" looks like markup but is not recognized; it is shown as text.`
	return sw
}

func serializeNoOwnText(w Warning) SerializableWarning {
	sw := serializeGeneric(w)
	sw.Description = "the message consists of quotes only."
	return sw
}
