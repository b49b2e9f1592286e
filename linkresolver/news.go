package linkresolver

import (
	"fmt"
	"strconv"
	"strings"
)

// MessageID returns the stored RFC message ID of a post. Posts that never
// went through NNTP get a synthesized "<id>.<seq>@<domain>".
func (r *Resolver) MessageID(postID int64) (string, bool) {
	msg, ok := r.message(postID, strconv.FormatInt(postID, 10))
	if !ok {
		return "", false
	}
	if id := strings.Trim(strings.TrimSpace(msg.RfcMessageID), "<>"); id != "" {
		return id, true
	}
	if r.domain == "" {
		return "", false
	}
	return fmt.Sprintf("%d.%d@%s", msg.ID, msg.Seq, r.domain), true
}

// TopicMessageID returns the message ID of the first post of a topic.
func (r *Resolver) TopicMessageID(topicID int64) (string, bool) {
	topic, ok := r.topic(topicID, strconv.FormatInt(topicID, 10))
	if !ok || topic.FirstPostID == 0 {
		return "", false
	}
	return r.MessageID(topic.FirstPostID)
}

// Newsgroup returns the newsgroup a forum is mirrored to.
func (r *Resolver) Newsgroup(forumID int64) (string, bool) {
	forum, ok := r.forum(forumID, strconv.FormatInt(forumID, 10))
	if !ok || !forum.Newsgroup.Valid || forum.Newsgroup.String == "" {
		return "", false
	}
	return forum.Newsgroup.String, true
}
