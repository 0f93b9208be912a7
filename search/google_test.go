package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleEngineSearch(t *testing.T) {
	var gotQuery, gotNum, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotNum = r.URL.Query().Get("num")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	e := NewGoogleEngine(srv.URL, "test-agent")
	urls, err := e.Search(context.Background(), "Luxe Cuts Austin hair salon", 5)
	require.NoError(t, err)

	assert.Equal(t, "Luxe Cuts Austin hair salon", gotQuery)
	assert.Equal(t, "7", gotNum)
	assert.Equal(t, "test-agent", gotUA)
	assert.Len(t, urls, 3)
	assert.Equal(t, "google", e.Name())
}

func TestGoogleEngineRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewGoogleEngine(srv.URL, "test-agent").Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGoogleEngineHonoursContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewGoogleEngine(srv.URL, "test-agent").Search(ctx, "q", 5)
	require.Error(t, err)
}
