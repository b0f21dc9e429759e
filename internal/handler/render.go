// Package handler exposes the HTTP handlers behind every route. Handlers
// bind and validate input, call into the repositories, and render HTML;
// they never build SQL or touch template internals.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mmirshod/fyyur/internal/utils"
)

// render executes the named page template, injecting any pending flash
// notice so every page can display it.
func render(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if msg, ok := utils.TakeFlash(c); ok {
		data["Flash"] = msg
	}
	return c.Render(http.StatusOK, name, data)
}

// renderNotFound renders the 404 page.
func renderNotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404.html", echo.Map{})
}

// renderServerError renders the 500 page. Storage error detail is never
// shown to the user; it has already been logged by the middleware.
func renderServerError(c echo.Context) error {
	return c.Render(http.StatusInternalServerError, "500.html", echo.Map{})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// flashRedirect sets a one-shot notice and redirects, the
// post/redirect/get pattern every mutation follows.
func flashRedirect(c echo.Context, message, location string) error {
	utils.SetFlash(c, message)
	return c.Redirect(http.StatusSeeOther, location)
}
