package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stefanreuther/c2ng-sub017/bbcode"
	mockdb "github.com/stefanreuther/c2ng-sub017/db/mock"
	db "github.com/stefanreuther/c2ng-sub017/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckText(t *testing.T) {
	testCases := []struct {
		name          string
		body          map[string]any
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Clean",
			body: map[string]any{"text": "hello [b]world[/b]"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Empty(t, requireWarnings(t, recorder))
			},
		},
		{
			name: "MissingClose",
			body: map[string]any{"text": "hello [b]world"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				warns := requireWarnings(t, recorder)
				require.Len(t, warns, 1)
				require.Equal(t, 6, warns[0].ByteIdx)
				require.Equal(t, bbcode.IssueMissingClose.String(), warns[0].Issue)
				require.Equal(t, "b", warns[0].Token)
				require.NotEmpty(t, warns[0].Description)
			},
		},
		{
			name: "BadLink",
			body: map[string]any{"text": "[game]5[/game] [game]6[/game]"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetGame(gomock.Any(), int64(5), int64(0)).Times(1).
					Return(db.Game{ID: 5, Name: "Alpha"}, nil)
				store.EXPECT().GetGame(gomock.Any(), int64(6), int64(0)).Times(1).
					Return(db.Game{}, &db.OpError{Kind: db.KindNotFound, Err: db.ErrEntityNotFound})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				warns := requireWarnings(t, recorder)
				require.Len(t, warns, 1)
				require.Equal(t, bbcode.IssueBadLink.String(), warns[0].Issue)
				require.Equal(t, "game", warns[0].Token)
				require.Equal(t, "6", warns[0].Extra)
			},
		},
		{
			name: "InvalidFlags",
			body: map[string]any{"text": "x", "flags": "L S"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, []ErrorField{{FieldName: "flags", ErrorMessage: "must contain only letters"}}, resp.Fields)
			},
		},
		{
			name: "MissingText",
			body: map[string]any{"flags": "LS"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockStore(ctrl)
			if tc.buildStubs != nil {
				tc.buildStubs(store)
			}

			service := newTestService(t, store, nil, nil)

			recorder := httptest.NewRecorder()
			service.router.ServeHTTP(recorder, newJSONRequest(t, http.MethodPost, CheckURL, tc.body))
			tc.checkResponse(t, recorder)
		})
	}
}

func requireWarnings(t *testing.T, recorder *httptest.ResponseRecorder) []bbcode.SerializableWarning {
	t.Helper()
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CheckResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.NotNil(t, resp.Warnings)
	return resp.Warnings
}
