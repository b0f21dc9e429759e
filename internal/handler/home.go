package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page. It carries no data beyond a possible
// flash notice.
func Home(c echo.Context) error {
	return render(c, "home.html", nil)
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
