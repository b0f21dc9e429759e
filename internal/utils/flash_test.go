package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestFlashRoundTrip(t *testing.T) {
	e := echo.New()

	// Setting the flash writes a cookie on the response.
	req := httptest.NewRequest(http.MethodPost, "/venues/create", nil)
	rec := httptest.NewRecorder()
	SetFlash(e.NewContext(req, rec), "Venue The Blue Note was successfully listed!")

	var flash *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "flash" {
			flash = ck
		}
	}
	if flash == nil {
		t.Fatalf("expected a flash cookie on the response")
	}

	// The next request carries that cookie and reads the message once.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: flash.Name, Value: flash.Value})
	rec2 := httptest.NewRecorder()
	msg, ok := TakeFlash(e.NewContext(req2, rec2))
	if !ok {
		t.Fatalf("expected a pending flash message")
	}
	if msg != "Venue The Blue Note was successfully listed!" {
		t.Fatalf("unexpected flash message: %q", msg)
	}

	// Taking the flash must clear the cookie.
	var cleared *http.Cookie
	for _, ck := range rec2.Result().Cookies() {
		if ck.Name == "flash" {
			cleared = ck
		}
	}
	if cleared == nil || cleared.MaxAge != -1 {
		t.Fatalf("expected the flash cookie to be expired, got %+v", cleared)
	}
}

func TestTakeFlash_NoCookie(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if msg, ok := TakeFlash(c); ok || msg != "" {
		t.Fatalf("expected no flash, got %q", msg)
	}
}
