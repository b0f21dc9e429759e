// Package utils holds small helpers shared by the HTTP layer.
package utils

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

const flashCookie = "flash"

// SetFlash stores a one-shot notice in a cookie so it survives the
// redirect that follows every mutation.
func SetFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
	})
}

// TakeFlash returns the pending notice, if any, and clears it so the
// message renders exactly once.
func TakeFlash(c echo.Context) (string, bool) {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return "", false
	}
	msg, err := url.QueryUnescape(ck.Value)
	if err != nil {
		msg = ck.Value
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	return msg, true
}
