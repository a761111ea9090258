package webserver

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "stocktrack_session"

var flashKinds = []string{"success", "danger"}

// Notice is a transient message shown once on the next rendered page.
type Notice struct {
	Kind    string
	Message string
}

// SetFlash queues a notice in the cookie session; it survives exactly
// one redirect.
func SetFlash(c echo.Context, kind, message string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message, kind)
	_ = sess.Save(c.Request(), c.Response())
}

// TakeFlashes drains all queued notices.
func TakeFlashes(c echo.Context) []Notice {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	var notices []Notice
	for _, kind := range flashKinds {
		for _, f := range sess.Flashes(kind) {
			if msg, ok := f.(string); ok {
				notices = append(notices, Notice{Kind: kind, Message: msg})
			}
		}
	}
	_ = sess.Save(c.Request(), c.Response())
	return notices
}
