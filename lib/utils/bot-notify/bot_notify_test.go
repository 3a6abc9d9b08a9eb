package botnotify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Run(`payload check`, func(t *testing.T) {
		var got ErrorEvent
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &got)
		}))
		defer srv.Close()

		err := send(srv.URL, ErrorEvent{Code: 502, Method: "GET", Path: "/blogs", Error: "cms \"down\""})
		require.Nil(t, err)
		require.Equal(t, 502, got.Code)
		require.Equal(t, `cms "down"`, got.Error)
	})

	t.Run(`bot error status check`, func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		require.NotNil(t, send(srv.URL, ErrorEvent{}))
	})
}
