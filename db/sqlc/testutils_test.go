package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stefanreuther/c2ng-sub017/util"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T) User {
	t.Helper()

	arg := createUserParams{
		Login:    util.RandomLogin(),
		RealName: pgtype.Text{String: util.RandomName(), Valid: true},
	}

	user, err := testStore.createUser(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, arg.Login, user.Login)
	require.Equal(t, arg.RealName, user.RealName)
	require.False(t, user.IsDeleted)

	return user
}

func createRandomForum(t *testing.T, public bool) Forum {
	t.Helper()

	arg := createForumParams{
		Name:      util.RandomName(),
		Newsgroup: pgtype.Text{String: "test." + util.RandomString(8), Valid: true},
		IsPublic:  public,
	}

	forum, err := testStore.createForum(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, arg.Name, forum.Name)

	return forum
}

// createRandomThread creates a topic with one message, which becomes its first post.
func createRandomThread(t *testing.T, forum Forum, author User) (Topic, Message) {
	t.Helper()
	ctx := context.Background()

	topic, err := testStore.createTopic(ctx, createTopicParams{
		ForumID: forum.ID,
		Subject: util.RandomName(),
	})
	require.NoError(t, err)

	msg, err := testStore.createMessage(ctx, createMessageParams{
		TopicID:  topic.ID,
		AuthorID: author.ID,
		Subject:  topic.Subject,
		Body:     "forum:" + util.RandomString(20),
	})
	require.NoError(t, err)

	err = testStore.setTopicFirstPost(ctx, setTopicFirstPostParams{
		ID:          topic.ID,
		FirstPostID: pgtype.Int8{Int64: msg.ID, Valid: true},
	})
	require.NoError(t, err)
	topic.FirstPostID = pgtype.Int8{Int64: msg.ID, Valid: true}

	return topic, msg
}

func createRandomGame(t *testing.T, owner *User, public bool) Game {
	t.Helper()

	arg := createGameParams{Name: util.RandomName(), IsPublic: public}
	if owner != nil {
		arg.OwnerID = pgtype.Int8{Int64: owner.ID, Valid: true}
	}

	game, err := testStore.createGame(context.Background(), arg)
	require.NoError(t, err)

	return game
}
