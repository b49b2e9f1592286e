package bbcode

// Link is the resolved form of a semantic link.
type Link struct {
	// ID is the numeric id of the linked object.
	ID int64

	// Name is the display name: game/forum name, topic or message subject, user's screen name.
	Name string

	// Key is the URL key of the object; for users the login name, otherwise empty.
	Key string
}

// LinkParser resolves the raw target of a semantic link.
// A false result means "not found or not permitted"; it is an expected outcome, not an error.
// Implementations are read-only and consulted synchronously.
type LinkParser interface {
	ParseGameLink(text string) (Link, bool)
	ParseForumLink(text string) (Link, bool)
	ParseTopicLink(text string) (Link, bool)
	ParseMessageLink(text string) (Link, bool)
	ParseUserLink(text string) (Link, bool)
}
