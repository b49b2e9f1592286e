// Package linkresolver resolves semantic forum links against the database.
package linkresolver

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/stefanreuther/c2ng-sub017/bbcode"
	db "github.com/stefanreuther/c2ng-sub017/db/sqlc"
)

// Resolver implements [bbcode.LinkParser] and [render.NewsResolver] for one request.
// Lookups are memoized, so a document linking the same object twice queries once.
// A Resolver is not safe for concurrent use.
type Resolver struct {
	ctx      context.Context
	store    db.Store
	viewerID int64
	domain   string

	links    map[string]linkResult
	messages map[int64]*db.MessageInfo
	topics   map[int64]*db.TopicInfo
	forums   map[int64]*db.Forum
}

type linkResult struct {
	link bbcode.Link
	ok   bool
}

// New creates a resolver acting on behalf of viewerID (0 for anonymous).
// domain is the right-hand side of synthesized message IDs.
func New(ctx context.Context, store db.Store, viewerID int64, domain string) *Resolver {
	return &Resolver{
		ctx:      ctx,
		store:    store,
		viewerID: viewerID,
		domain:   domain,
		links:    make(map[string]linkResult),
		messages: make(map[int64]*db.MessageInfo),
		topics:   make(map[int64]*db.TopicInfo),
		forums:   make(map[int64]*db.Forum),
	}
}

// parseID accepts a positive decimal id, ignoring surrounding blanks.
func parseID(text string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// lookupFailed reports whether err is set. Errors other than a missing or
// invisible entity are logged; in both cases the link does not resolve.
func (r *Resolver) lookupFailed(err error, kind string, target string) bool {
	if err == nil {
		return false
	}
	if !errors.Is(err, db.ErrEntityNotFound) {
		log.Warn().Err(err).Str("kind", kind).Str("target", target).Msg("link lookup failed")
	}
	return true
}

func (r *Resolver) memo(kind string, text string, resolve func() (bbcode.Link, bool)) (bbcode.Link, bool) {
	key := kind + "\x00" + text
	if res, ok := r.links[key]; ok {
		return res.link, res.ok
	}
	link, ok := resolve()
	r.links[key] = linkResult{link: link, ok: ok}
	return link, ok
}

func (r *Resolver) ParseGameLink(text string) (bbcode.Link, bool) {
	return r.memo("game", text, func() (bbcode.Link, bool) {
		id, ok := parseID(text)
		if !ok {
			return bbcode.Link{}, false
		}
		game, err := r.store.GetGame(r.ctx, id, r.viewerID)
		if r.lookupFailed(err, "game", text) {
			return bbcode.Link{}, false
		}
		return bbcode.Link{ID: game.ID, Name: game.Name}, true
	})
}

func (r *Resolver) ParseForumLink(text string) (bbcode.Link, bool) {
	return r.memo("forum", text, func() (bbcode.Link, bool) {
		id, ok := parseID(text)
		if !ok {
			return bbcode.Link{}, false
		}
		forum, found := r.forum(id, text)
		if !found {
			return bbcode.Link{}, false
		}
		return bbcode.Link{ID: forum.ID, Name: forum.Name}, true
	})
}

func (r *Resolver) ParseTopicLink(text string) (bbcode.Link, bool) {
	return r.memo("thread", text, func() (bbcode.Link, bool) {
		id, ok := parseID(text)
		if !ok {
			return bbcode.Link{}, false
		}
		topic, found := r.topic(id, text)
		if !found {
			return bbcode.Link{}, false
		}
		return bbcode.Link{ID: topic.ID, Name: topic.Subject}, true
	})
}

func (r *Resolver) ParseMessageLink(text string) (bbcode.Link, bool) {
	return r.memo("post", text, func() (bbcode.Link, bool) {
		id, ok := parseID(text)
		if !ok {
			return bbcode.Link{}, false
		}
		msg, found := r.message(id, text)
		if !found {
			return bbcode.Link{}, false
		}
		return bbcode.Link{ID: msg.ID, Name: msg.Subject}, true
	})
}

// ParseUserLink resolves a login name. The display name is the user's real
// name when set, the login otherwise.
func (r *Resolver) ParseUserLink(text string) (bbcode.Link, bool) {
	return r.memo("user", text, func() (bbcode.Link, bool) {
		login := strings.TrimSpace(text)
		if login == "" {
			return bbcode.Link{}, false
		}
		user, err := r.store.GetUserByLogin(r.ctx, login)
		if r.lookupFailed(err, "user", text) {
			return bbcode.Link{}, false
		}
		name := user.Login
		if user.RealName.Valid && user.RealName.String != "" {
			name = user.RealName.String
		}
		return bbcode.Link{ID: user.ID, Name: name, Key: user.Login}, true
	})
}

func (r *Resolver) message(id int64, target string) (*db.MessageInfo, bool) {
	if msg, ok := r.messages[id]; ok {
		return msg, msg != nil
	}
	info, err := r.store.GetMessage(r.ctx, id)
	if r.lookupFailed(err, "post", target) {
		r.messages[id] = nil
		return nil, false
	}
	r.messages[id] = &info
	return &info, true
}

func (r *Resolver) topic(id int64, target string) (*db.TopicInfo, bool) {
	if topic, ok := r.topics[id]; ok {
		return topic, topic != nil
	}
	info, err := r.store.GetTopic(r.ctx, id)
	if r.lookupFailed(err, "thread", target) {
		r.topics[id] = nil
		return nil, false
	}
	r.topics[id] = &info
	return &info, true
}

func (r *Resolver) forum(id int64, target string) (*db.Forum, bool) {
	if forum, ok := r.forums[id]; ok {
		return forum, forum != nil
	}
	forum, err := r.store.GetForum(r.ctx, id)
	if r.lookupFailed(err, "forum", target) {
		r.forums[id] = nil
		return nil, false
	}
	r.forums[id] = &forum
	return &forum, true
}
