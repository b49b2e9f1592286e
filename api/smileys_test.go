package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stefanreuther/c2ng-sub017/inline"
	"github.com/stretchr/testify/require"
)

func TestListSmileys(t *testing.T) {
	service := newTestService(t, nil, nil, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, SmileysURL, nil)
	require.NoError(t, err)

	service.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []inline.SmileyDefinition
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Equal(t, inline.Smileys(), got)
}

func TestPing(t *testing.T) {
	service := newTestService(t, nil, nil, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, PingURL, nil)
	require.NoError(t, err)

	service.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "pong", recorder.Body.String())
}

func TestCorsMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantCode   int
	}{
		{"AllowedOrigin", http.MethodGet, "http://localhost:3000", "http://localhost:3000", http.StatusOK},
		{"OtherOrigin", http.MethodGet, "http://evil.example", "", http.StatusOK},
		{"Preflight", http.MethodOptions, "http://localhost:3000", "http://localhost:3000", http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t, nil, nil, nil)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(tc.method, PingURL, nil)
			require.NoError(t, err)
			request.Header.Set("Origin", tc.origin)

			service.router.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantCode, recorder.Code)
			require.Equal(t, tc.wantOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
