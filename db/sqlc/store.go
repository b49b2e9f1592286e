package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides the read-only lookups used to resolve forum links.
// All methods return an error matching [ErrEntityNotFound] when the entity
// does not exist or is not visible to the viewer.
type Store interface {
	GetUserByLogin(ctx context.Context, login string) (User, error)
	GetUserByID(ctx context.Context, userID int64) (User, error)
	GetForum(ctx context.Context, forumID int64) (Forum, error)
	GetTopic(ctx context.Context, topicID int64) (TopicInfo, error)
	GetMessage(ctx context.Context, messageID int64) (MessageInfo, error)
	GetGame(ctx context.Context, gameID int64, viewerID int64) (Game, error)
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Shutdown closes the connection pool.
func (store *SQLStore) Shutdown() {
	store.connPool.Close()
}
