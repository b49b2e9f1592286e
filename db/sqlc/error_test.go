package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpErrorMatchesNotFound(t *testing.T) {
	testCases := []struct {
		kind Kind
		want bool
	}{
		{KindNotFound, true},
		{KindDeleted, true},
		{KindPermission, true},
		{KindInternal, false},
		{KindInvalid, false},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			err := newOpError("op", tc.kind, entUser, errors.New("cause"))
			require.Equal(t, tc.want, errors.Is(err, ErrEntityNotFound))
		})
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := sqlError(opGetForum, opDetails{entity: entForum, entityID: 3}, cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, `get-forum: forum 3: internal: connection reset`, err.Error())
	require.Equal(t, `get-user-by-login: user "bob": not found: entity not found`,
		newOpError(opGetUserByLogin, KindNotFound, entUser, ErrEntityNotFound, withInput("bob")).Error())
}

// Invalid ids are rejected before any query runs, so no database is needed.
func TestLookupsRejectInvalidIDs(t *testing.T) {
	store := &SQLStore{}
	ctx := context.Background()

	_, err := store.GetForum(ctx, 0)
	requireOpError(t, err, opGetForum, KindInvalid)
	_, err = store.GetTopic(ctx, -1)
	requireOpError(t, err, opGetTopic, KindInvalid)
	_, err = store.GetMessage(ctx, 0)
	requireOpError(t, err, opGetMessage, KindInvalid)
	_, err = store.GetGame(ctx, 0, 1)
	requireOpError(t, err, opGetGame, KindInvalid)
	_, err = store.GetUserByLogin(ctx, " ")
	requireOpError(t, err, opGetUserByLogin, KindInvalid)
}
