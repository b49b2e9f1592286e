package render

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	tn "github.com/stefanreuther/c2ng-sub017/textnode"
)

// linkTarget is a resolved link.
type linkTarget struct {
	// URL is the absolute or site-relative link target.
	URL string

	// Name is the display name used when the link has no content.
	Name string

	// ID is the numeric id of a semantic link target.
	ID int64

	// Self marks a link to the acting user.
	Self bool
}

// allowedPrefixes are the URL prefixes accepted in href and src attributes.
var allowedPrefixes = []string{
	"/",
	"http://",
	"https://",
	"mailto:",
	"ftp://",
	"news:",
	"nntp:",
	"data:image/",
	"data:text/plain",
	"data:text/html",
}

// isAllowedURL checks a link target against the allow-list, case-insensitively.
func isAllowedURL(target string) bool {
	for _, p := range allowedPrefixes {
		if len(target) >= len(p) && strings.EqualFold(target[:len(p)], p) {
			return true
		}
	}
	return false
}

// resolveLink converts a link node into its target.
// It reports false if a semantic link does not resolve or a target is not allowed.
func resolveLink(n *tn.Node, ctx *Context, opts Options) (linkTarget, bool) {
	switch n.Minor {
	case tn.MinorURL:
		return linkTarget{URL: n.Text, Name: n.Text}, n.Text != "" && isAllowedURL(n.Text)

	case tn.MinorEmail:
		return linkTarget{URL: "mailto:" + n.Text, Name: n.Text}, n.Text != ""
	}

	if ctx == nil || ctx.Links == nil {
		return linkTarget{}, false
	}

	var (
		link bbcode.Link
		ok   bool
		path string
	)
	switch n.Minor {
	case tn.MinorThread:
		if link, ok = ctx.Links.ParseTopicLink(n.Text); ok {
			path = "talk/thread.cgi/" + strconv.FormatInt(link.ID, 10) + "-" + slug(link.Name)
		}
	case tn.MinorPost:
		if link, ok = ctx.Links.ParseMessageLink(n.Text); ok {
			path = "talk/msg.cgi/" + strconv.FormatInt(link.ID, 10)
		}
	case tn.MinorGame:
		if link, ok = ctx.Links.ParseGameLink(n.Text); ok {
			path = "host/game.cgi/" + strconv.FormatInt(link.ID, 10) + "-" + slug(link.Name)
		}
	case tn.MinorForum:
		if link, ok = ctx.Links.ParseForumLink(n.Text); ok {
			path = "talk/forum.cgi/" + strconv.FormatInt(link.ID, 10) + "-" + slug(link.Name)
		}
	case tn.MinorUser:
		if link, ok = ctx.Links.ParseUserLink(n.Text); ok {
			path = "userinfo.cgi/" + url.PathEscape(link.Key)
		}
	}
	if !ok {
		return linkTarget{}, false
	}

	return linkTarget{
		URL:  opts.BaseURL + path,
		Name: link.Name,
		ID:   link.ID,
		Self: n.Minor == tn.MinorUser && ctx.UserID != 0 && link.ID == ctx.UserID,
	}, true
}

// slug converts a name into a URL path component: runs of anything but ASCII
// letters and digits become a single '-'.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteByte(c)
			dash = false
		} else {
			dash = true
		}
	}
	return b.String()
}

// parseAttribution splits a quote attribution "user" or "user;postId".
func parseAttribution(text string) (user string, post string) {
	user, post, _ = strings.Cut(text, ";")
	return strings.TrimSpace(user), strings.TrimSpace(post)
}
