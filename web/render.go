// Package web carries the small amount of shared machinery the page handlers
// need: one-shot flash messages and a render helper that injects them,
// together with the signed-in state, into every template.
package web

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	FlashError   = "error"
	FlashSuccess = "success"
)

type FlashMessage struct {
	Level string
	Text  string
}

// Flash queues a one-shot message for the next rendered page.
func Flash(c *gin.Context, level, text string) {
	session := sessions.Default(c)
	session.AddFlash(text, level)
	_ = session.Save()
}

// Render draws an HTML template with the drained flash queue, the current
// user id (if any) and the current time available to the page.
func Render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	session := sessions.Default(c)
	var flashes []FlashMessage
	for _, level := range []string{FlashError, FlashSuccess} {
		for _, f := range session.Flashes(level) {
			if text, ok := f.(string); ok {
				flashes = append(flashes, FlashMessage{Level: level, Text: text})
			}
		}
	}
	_ = session.Save()

	data["Flashes"] = flashes
	data["Now"] = time.Now()
	if id, ok := c.Get("user_id"); ok {
		data["UserID"] = id
		data["LoggedIn"] = true
	} else {
		data["LoggedIn"] = false
	}

	c.HTML(http.StatusOK, name, data)
}
