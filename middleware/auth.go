package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Jayasri-Akky/E-commerceWebsite/web"
)

const sessionUserKey = "user_id"

// LoadSession copies the signed-in user id (if any) from the session cookie
// onto the request context for the handlers downstream.
func LoadSession(c *gin.Context) {
	session := sessions.Default(c)
	if v := session.Get(sessionUserKey); v != nil {
		if id, ok := v.(uint); ok {
			c.Set("user_id", id)
		}
	}
	c.Next()
}

// RequireLogin redirects unauthenticated requests to the login page.
func RequireLogin(c *gin.Context) {
	if _, ok := c.Get("user_id"); !ok {
		web.Flash(c, web.FlashError, "You must login first!")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// UserID returns the authenticated user's id. Only valid behind RequireLogin.
func UserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	id, _ := v.(uint)
	return id
}

// SignIn stores the user id in the session cookie.
func SignIn(c *gin.Context, id uint) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, id)
	return session.Save()
}

// SignOut tears down the session unconditionally.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}
