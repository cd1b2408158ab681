package middleware

import (
	"errors"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"garasjelogg/internal/session"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "gl_session"

const cookieMaxAge = 7 * 24 * time.Hour

var (
	secretOnce sync.Once
	secret     []byte
)

// sessionSecret resolves SESSION_SECRET lazily so a .env loaded at startup
// is honored.
func sessionSecret() []byte {
	secretOnce.Do(func() {
		val := os.Getenv("SESSION_SECRET")
		if val == "" {
			val = "dev-secret-change" // fallback
		}
		secret = []byte(val)
	})
	return secret
}

// SignSession wraps a server-side session ID in a signed token for the cookie.
func SignSession(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(cookieMaxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ParseSession extracts the session ID from a signed cookie value.
func ParseSession(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	return sid, nil
}

// SetSessionCookie issues the signed cookie for an established session.
func SetSessionCookie(c *gin.Context, sessionID string) error {
	signed, err := SignSession(sessionID)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, signed, int(cookieMaxAge.Seconds()), "/", "", false, true)
	return nil
}

// ClearSessionCookie drops the cookie from the browser.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// CurrentSession resolves the request's session, if any.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	sid, err := ParseSession(cookie)
	if err != nil {
		return nil, false
	}
	return session.Get(sid)
}

// RequireLogin redirects to the login page unless the request carries a
// valid session; the session is stored on the context for handlers.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Set("user", sess.User)
		c.Next()
	}
}

// MustSession returns the session placed on the context by RequireLogin.
func MustSession(c *gin.Context) *session.Session {
	return c.MustGet("session").(*session.Session)
}
