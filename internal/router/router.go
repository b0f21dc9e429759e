// Package router defines how HTTP routes are registered for the
// directory. Every route maps one-to-one onto a handler method; there is
// no auth middleware because the directory is fully public.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mmirshod/fyyur/internal/handler"
)

// RegisterRoutes wires every page and mutation route onto the provided
// Echo instance.
func RegisterRoutes(e *echo.Echo, venues *handler.VenueHandler, artists *handler.ArtistHandler, shows *handler.ShowHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/", handler.Home)

	e.GET("/venues", venues.List)
	e.POST("/venues/search", venues.Search)
	e.GET("/venues/create", venues.CreateForm)
	e.POST("/venues/create", venues.Create)
	e.GET("/venues/:id", venues.Detail)
	e.DELETE("/venues/:id", venues.Delete)
	e.GET("/venues/:id/edit", venues.EditForm)
	e.POST("/venues/:id/edit", venues.Edit)

	e.GET("/artists", artists.List)
	e.POST("/artists/search", artists.Search)
	e.GET("/artists/create", artists.CreateForm)
	e.POST("/artists/create", artists.Create)
	e.GET("/artists/:id", artists.Detail)
	e.GET("/artists/:id/edit", artists.EditForm)
	e.POST("/artists/:id/edit", artists.Edit)

	e.GET("/shows", shows.List)
	e.GET("/shows/create", shows.CreateForm)
	e.POST("/shows/create", shows.Create)
}
