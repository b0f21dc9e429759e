package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmirshod/fyyur/internal/form"
	"github.com/mmirshod/fyyur/internal/repository"
	"github.com/mmirshod/fyyur/internal/view"
)

// ArtistHandler serves every artist route. There is deliberately no
// delete route for artists.
type ArtistHandler struct {
	ArtistRepo *repository.ArtistRepo
}

// NewArtistHandler constructs an ArtistHandler and panics if the repository is nil.
func NewArtistHandler(artistRepo *repository.ArtistRepo) *ArtistHandler {
	if artistRepo == nil {
		panic("nil repository passed to NewArtistHandler")
	}
	return &ArtistHandler{ArtistRepo: artistRepo}
}

// List handles GET /artists and renders every artist as id and name.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.ArtistRepo.ListAll(c.Request().Context())
	if err != nil {
		return renderServerError(c)
	}
	return render(c, "artists.html", echo.Map{"Artists": artists})
}

// Search handles POST /artists/search, the same contract as venue search.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	results, err := h.ArtistRepo.SearchByName(c.Request().Context(), term, time.Now().UTC())
	if err != nil {
		return renderServerError(c)
	}
	return render(c, "search_artists.html", echo.Map{
		"Term":    term,
		"Count":   len(results),
		"Results": results,
	})
}

// Detail handles GET /artists/:id with the artist's genres and
// past/upcoming shows.
func (h *ArtistHandler) Detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return renderNotFound(c)
	}
	detail, err := h.ArtistRepo.GetDetail(c.Request().Context(), id, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return renderNotFound(c)
		}
		return renderServerError(c)
	}
	return render(c, "show_artist.html", echo.Map{"Detail": detail})
}

// CreateForm handles GET /artists/create and renders a blank artist form.
func (h *ArtistHandler) CreateForm(c echo.Context) error {
	return render(c, "new_artist.html", echo.Map{"GenreChoices": view.Genres})
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(c echo.Context) error {
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return flashRedirect(c, "Invalid form submission.", "/artists/create")
	}
	if errs := f.Validate(); len(errs) > 0 {
		return flashRedirect(c, form.JoinErrors(errs), "/artists/create")
	}
	a := f.Model()
	if err := h.ArtistRepo.Create(c.Request().Context(), a, f.Genres); err != nil {
		return flashRedirect(c, "An error occurred. Artist "+a.Name+" could not be listed.", "/")
	}
	return flashRedirect(c, "Artist "+a.Name+" was successfully listed!", "/")
}

// EditForm handles GET /artists/:id/edit.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return renderNotFound(c)
	}
	a, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return renderNotFound(c)
		}
		return renderServerError(c)
	}
	labels, err := h.ArtistRepo.GenreLabels(c.Request().Context(), id)
	if err != nil {
		return renderServerError(c)
	}
	return render(c, "edit_artist.html", echo.Map{
		"Artist":       a,
		"Genres":       labels,
		"GenreChoices": view.Genres,
	})
}

// Edit handles POST /artists/:id/edit with wholesale field overwrite and
// genre set replacement.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return renderNotFound(c)
	}
	editURL := fmt.Sprintf("/artists/%d/edit", id)
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return flashRedirect(c, "Invalid form submission.", editURL)
	}
	if errs := f.Validate(); len(errs) > 0 {
		return flashRedirect(c, form.JoinErrors(errs), editURL)
	}
	a := f.Model()
	a.ID = id
	if err := h.ArtistRepo.Update(c.Request().Context(), a, f.Genres); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return renderNotFound(c)
		}
		return flashRedirect(c, "An error occurred. Artist "+a.Name+" could not be updated.", "/")
	}
	return flashRedirect(c, "Artist "+a.Name+" was successfully updated!", fmt.Sprintf("/artists/%d", id))
}
