package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/recipe", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/recipe", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html>soup</html>"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(0, "test-agent")

	res, err := f.Fetch(context.Background(), srv.URL+"/old")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/recipe", res.URL)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<html>soup</html>", res.HTML)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestValidateURL(t *testing.T) {
	for _, bad := range []string{"ftp://example.com/x", "example.com/recipe", "", "https://"} {
		_, err := ValidateURL(bad)
		assert.ErrorIs(t, err, core.ErrInvalidURL, bad)
	}
	u, err := ValidateURL("https://example.com/soup")
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Host)
}
