package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garasjelogg/internal/auth"
	"garasjelogg/internal/logger"
	"garasjelogg/internal/middleware"
	"garasjelogg/internal/session"
)

var verifier auth.CredentialVerifier

// SetVerifier wires the credential verifier used by the login handler.
func SetVerifier(v auth.CredentialVerifier) {
	verifier = v
}

// ShowLogin renders the login form, or skips straight to the vehicle list
// when the browser already has a valid session.
func ShowLogin(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusFound, "/vehicles")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// LoginUser checks the submitted credentials and establishes a session.
func LoginUser(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if verifier == nil || !verifier.Verify(username, password) {
		logger.L().WithField("user", username).Warn("failed login attempt")
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": "Feil brukernavn eller passord",
		})
		return
	}

	sess := session.Create(username)
	if err := middleware.SetSessionCookie(c, sess.ID); err != nil {
		session.Destroy(sess.ID)
		logger.L().WithError(err).Error("could not sign session cookie")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Intern feil, prøv igjen",
		})
		return
	}

	logger.L().WithField("user", username).Info("logged in")
	c.Redirect(http.StatusFound, "/vehicles")
}

// LogoutUser clears the session unconditionally.
func LogoutUser(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		session.Destroy(sess.ID)
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
