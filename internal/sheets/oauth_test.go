package sheets

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestOAuth2Config_AuthURL(t *testing.T) {
	cfg := OAuth2Config{ClientID: "client", ClientSecret: "secret", CallbackAddr: "localhost:9999"}

	u, err := url.Parse(cfg.AuthURL("abc"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "abc", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "http://localhost:9999/callback", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "spreadsheets.readonly")
}

func TestCallbackHandler(t *testing.T) {
	codes := make(chan string, 1)
	errs := make(chan error, 1)
	h := callbackHandler("good", codes, errs)

	t.Run("state mismatch", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/callback?state=bad&code=x", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, codes)
	})

	t.Run("missing code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/callback?state=good", nil))
		require.Len(t, errs, 1)
		<-errs
	})

	t.Run("code delivered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/callback?state=good&code=xyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "xyz", <-codes)
	})
}

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pedal", "sheets-token.json")
	require.NoError(t, saveToken(path, &oauth2.Token{RefreshToken: "refresh", TokenType: "Bearer"}))

	token, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "refresh", token.RefreshToken)
}
