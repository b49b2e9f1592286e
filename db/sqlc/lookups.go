package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

const (
	opGetUserByLogin = "get-user-by-login"
	opGetUserByID    = "get-user-by-id"
	opGetForum       = "get-forum"
	opGetTopic       = "get-topic"
	opGetMessage     = "get-message"
	opGetGame        = "get-game"
)

// TopicInfo is a topic header.
type TopicInfo struct {
	ID          int64
	ForumID     int64
	Subject     string
	FirstPostID int64
}

// MessageInfo is a message header, without body.
type MessageInfo struct {
	ID           int64
	TopicID      int64
	AuthorID     int64
	Subject      string
	RfcMessageID string
	Seq          int32
}

// GetUserByLogin returns the user with the given login.
// Returns KindNotFound for unknown logins and KindDeleted for soft-deleted users.
func (s *SQLStore) GetUserByLogin(ctx context.Context, login string) (User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return User{}, newOpError(opGetUserByLogin, KindInvalid, entUser, ErrInvalidID)
	}

	user, err := s.getUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, newOpError(opGetUserByLogin, KindNotFound, entUser, ErrEntityNotFound, withInput(login))
		}
		return User{}, sqlError(opGetUserByLogin, opDetails{entity: entUser, input: login}, err)
	}

	if user.IsDeleted {
		return User{}, newOpError(
			opGetUserByLogin,
			KindDeleted,
			entUser,
			fmt.Errorf("user %q is deleted", login),
			withEntityID(user.ID),
		)
	}

	return user, nil
}

// GetUserByID returns the user with the given id, with the same error kinds as [SQLStore.GetUserByLogin].
func (s *SQLStore) GetUserByID(ctx context.Context, userID int64) (User, error) {
	if userID <= 0 {
		return User{}, newOpError(opGetUserByID, KindInvalid, entUser, ErrInvalidID, withEntityID(userID))
	}

	user, err := s.getUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, notFoundError(opGetUserByID, entUser, userID)
		}
		return User{}, sqlError(opGetUserByID, opDetails{entity: entUser, entityID: userID}, err)
	}

	if user.IsDeleted {
		return User{}, newOpError(opGetUserByID, KindDeleted, entUser, fmt.Errorf("user %d is deleted", userID), withEntityID(userID))
	}

	return user, nil
}

// GetForum returns a public forum.
// Returns KindNotFound for unknown forums and KindPermission for non-public ones.
func (s *SQLStore) GetForum(ctx context.Context, forumID int64) (Forum, error) {
	if forumID <= 0 {
		return Forum{}, newOpError(opGetForum, KindInvalid, entForum, ErrInvalidID, withEntityID(forumID))
	}

	forum, err := s.getForum(ctx, forumID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Forum{}, notFoundError(opGetForum, entForum, forumID)
		}
		return Forum{}, sqlError(opGetForum, opDetails{entity: entForum, entityID: forumID}, err)
	}

	if !forum.IsPublic {
		return Forum{}, newOpError(opGetForum, KindPermission, entForum, ErrNotVisible, withEntityID(forumID))
	}

	return forum, nil
}

// GetTopic returns a topic whose forum is public.
func (s *SQLStore) GetTopic(ctx context.Context, topicID int64) (TopicInfo, error) {
	if topicID <= 0 {
		return TopicInfo{}, newOpError(opGetTopic, KindInvalid, entTopic, ErrInvalidID, withEntityID(topicID))
	}

	row, err := s.getTopic(ctx, topicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TopicInfo{}, notFoundError(opGetTopic, entTopic, topicID)
		}
		return TopicInfo{}, sqlError(opGetTopic, opDetails{entity: entTopic, entityID: topicID}, err)
	}

	if !row.ForumIsPublic {
		return TopicInfo{}, newOpError(opGetTopic, KindPermission, entTopic, ErrNotVisible, withEntityID(topicID))
	}

	return TopicInfo{
		ID:          row.ID,
		ForumID:     row.ForumID,
		Subject:     row.Subject,
		FirstPostID: row.FirstPostID.Int64,
	}, nil
}

// GetMessage returns a message header whose forum is public.
func (s *SQLStore) GetMessage(ctx context.Context, messageID int64) (MessageInfo, error) {
	if messageID <= 0 {
		return MessageInfo{}, newOpError(opGetMessage, KindInvalid, entMessage, ErrInvalidID, withEntityID(messageID))
	}

	row, err := s.getMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return MessageInfo{}, notFoundError(opGetMessage, entMessage, messageID)
		}
		return MessageInfo{}, sqlError(opGetMessage, opDetails{entity: entMessage, entityID: messageID}, err)
	}

	if !row.ForumIsPublic {
		return MessageInfo{}, newOpError(opGetMessage, KindPermission, entMessage, ErrNotVisible, withEntityID(messageID))
	}

	return MessageInfo{
		ID:           row.ID,
		TopicID:      row.TopicID,
		AuthorID:     row.AuthorID,
		Subject:      row.Subject,
		RfcMessageID: row.RfcMessageID.String,
		Seq:          row.Seq,
	}, nil
}

// GetGame returns a game that is public or owned by the viewer.
func (s *SQLStore) GetGame(ctx context.Context, gameID int64, viewerID int64) (Game, error) {
	if gameID <= 0 {
		return Game{}, newOpError(opGetGame, KindInvalid, entGame, ErrInvalidID, withEntityID(gameID))
	}

	game, err := s.getGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Game{}, notFoundError(opGetGame, entGame, gameID)
		}
		return Game{}, sqlError(opGetGame, opDetails{entity: entGame, entityID: gameID}, err)
	}

	owned := viewerID != 0 && game.OwnerID.Valid && game.OwnerID.Int64 == viewerID
	if !game.IsPublic && !owned {
		return Game{}, newOpError(opGetGame, KindPermission, entGame, ErrNotVisible, withEntityID(gameID))
	}

	return game, nil
}
