package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garasjelogg/internal/session"
)

func TestSignAndParseSession(t *testing.T) {
	signed, err := SignSession("some-session-id")
	require.NoError(t, err)

	sid, err := ParseSession(signed)
	require.NoError(t, err)
	assert.Equal(t, "some-session-id", sid)
}

func TestParseSessionRejectsGarbage(t *testing.T) {
	_, err := ParseSession("not-a-token")
	assert.Error(t, err)

	_, err = ParseSession("")
	assert.Error(t, err)
}

func guardedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireLogin(), func(c *gin.Context) {
		c.String(http.StatusOK, "hello "+MustSession(c).User)
	})
	return r
}

func TestRequireLoginRedirectsWithoutSession(t *testing.T) {
	r := guardedEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireLoginRejectsUnknownSessionID(t *testing.T) {
	r := guardedEngine()

	signed, err := SignSession("session-that-was-destroyed")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: signed})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequireLoginPassesThroughWithSession(t *testing.T) {
	r := guardedEngine()

	sess := session.Create("Admin")
	signed, err := SignSession(sess.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: signed})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello Admin", w.Body.String())
}
