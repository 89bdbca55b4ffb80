package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/nutshell/internal/unit"
)

func serveJSON(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return serveBody(t, "application/json", status, body)
}

func serveBody(t *testing.T, contentType string, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header()["Content-Type"] = nil
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, url string) *Client {
	t.Helper()
	c := NewClient(url, 2*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestFetch_DecodesNamesInOrder(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `[{"Name":"A","Venue":"x"},{"Name":"B"}]`)

	ds, err := newClient(t, srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, ds.Names())
}

func TestFetch_JSONWithoutJSONContentType(t *testing.T) {
	for _, ct := range []string{"text/plain; charset=utf-8", ""} {
		t.Run(ct, func(t *testing.T) {
			srv := serveBody(t, ct, http.StatusOK, `[{"Name":"A"},{"Name":"B"}]`)

			ds, err := newClient(t, srv.URL).Fetch(context.Background())
			require.NoError(t, err)
			require.Equal(t, []string{"A", "B"}, ds.Names())
		})
	}
}

func TestFetch_EmptyList(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `[]`)

	ds, err := newClient(t, srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Empty(t, ds)
}

func TestFetch_ErrorStatus(t *testing.T) {
	srv := serveJSON(t, http.StatusBadGateway, `{"error":"upstream"}`)

	_, err := newClient(t, srv.URL).Fetch(context.Background())
	var fe *unit.FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, http.StatusBadGateway, fe.Status)
	require.Equal(t, srv.URL, fe.URL)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newClient(t, url).Fetch(context.Background())
	var fe *unit.FetchError
	require.ErrorAs(t, err, &fe)
	require.Zero(t, fe.Status)
}

func TestFetch_NotAList(t *testing.T) {
	srv := serveJSON(t, http.StatusOK, `null`)

	_, err := newClient(t, srv.URL).Fetch(context.Background())
	var fe *unit.FetchError
	require.ErrorAs(t, err, &fe)
}
