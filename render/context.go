package render

import "github.com/stefanreuther/c2ng-sub017/bbcode"

// NewsResolver maps forum objects to their NNTP identities.
// A false result means the object has no NNTP identity; the link is then rendered generically.
type NewsResolver interface {
	// MessageID returns the RFC message ID of a post, without angle brackets.
	MessageID(postID int64) (string, bool)

	// TopicMessageID returns the RFC message ID of the first post of a topic.
	TopicMessageID(topicID int64) (string, bool)

	// Newsgroup returns the newsgroup name of a forum.
	Newsgroup(forumID int64) (string, bool)
}

// Context is the trusted, server-supplied environment of a render call.
// It is never built from raw user input.
type Context struct {
	// Links resolves semantic links. If nil, no semantic link resolves.
	Links bbcode.LinkParser

	// News resolves NNTP identities for "news" output. May be nil.
	News NewsResolver

	// Highlighter colors code paragraphs in HTML output. May be nil.
	Highlighter Highlighter

	// UserID is the acting user, 0 if anonymous.
	UserID int64

	// QuoteMessageID and QuoteAuthor produce the attribution "author;id" for the
	// "quote:" transformation. Without QuoteAuthor the quote is unattributed; callers
	// that can look up the message author fill it in before rendering.
	QuoteMessageID int64
	QuoteAuthor    string
}

// Options configures a render call.
type Options struct {
	// BaseURL is prepended to site-relative link targets and smiley images.
	BaseURL string

	// Format is the output format, optionally preceded by transformation prefixes.
	Format string
}
