package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmirshod/fyyur/internal/form"
	"github.com/mmirshod/fyyur/internal/repository"
	"github.com/mmirshod/fyyur/internal/view"
)

// VenueHandler serves every venue route.
type VenueHandler struct {
	VenueRepo *repository.VenueRepo
}

// NewVenueHandler constructs a VenueHandler and panics if the repository is nil.
func NewVenueHandler(venueRepo *repository.VenueRepo) *VenueHandler {
	if venueRepo == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{VenueRepo: venueRepo}
}

// List handles GET /venues and renders venues grouped by (city, state)
// with per-venue upcoming show counts.
func (h *VenueHandler) List(c echo.Context) error {
	areas, err := h.VenueRepo.ListAreas(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return renderServerError(c)
	}
	return render(c, "venues.html", echo.Map{"Areas": areas})
}

// Search handles POST /venues/search. An empty search term matches every
// venue.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	results, err := h.VenueRepo.SearchByName(c.Request().Context(), term, time.Now().UTC())
	if err != nil {
		return renderServerError(c)
	}
	return render(c, "search_venues.html", echo.Map{
		"Term":    term,
		"Count":   len(results),
		"Results": results,
	})
}

// Detail handles GET /venues/:id and renders the venue page with its
// genres and past/upcoming shows. Unknown ids get the 404 page.
func (h *VenueHandler) Detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return renderNotFound(c)
	}
	detail, err := h.VenueRepo.GetDetail(c.Request().Context(), id, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return renderNotFound(c)
		}
		return renderServerError(c)
	}
	return render(c, "show_venue.html", echo.Map{"Detail": detail})
}

// CreateForm handles GET /venues/create and renders a blank venue form.
func (h *VenueHandler) CreateForm(c echo.Context) error {
	return render(c, "new_venue.html", echo.Map{"GenreChoices": view.Genres})
}

// Create handles POST /venues/create. Validation failures flash the field
// errors back to the form; storage failures roll back wholesale and flash
// a generic notice.
func (h *VenueHandler) Create(c echo.Context) error {
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return flashRedirect(c, "Invalid form submission.", "/venues/create")
	}
	if errs := f.Validate(); len(errs) > 0 {
		return flashRedirect(c, form.JoinErrors(errs), "/venues/create")
	}
	v := f.Model()
	if err := h.VenueRepo.Create(c.Request().Context(), v, f.Genres); err != nil {
		return flashRedirect(c, "An error occurred. Venue "+v.Name+" could not be listed.", "/")
	}
	return flashRedirect(c, "Venue "+v.Name+" was successfully listed!", "/")
}

// Delete handles DELETE /venues/:id. The venue's shows and genre
// associations go with it. Responds 204 on success so the caller's
// script can redirect.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.VenueRepo.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete venue"})
	}
	return c.NoContent(http.StatusNoContent)
}

// EditForm handles GET /venues/:id/edit and renders the form
// pre-populated with the venue's current fields and genre set.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return renderNotFound(c)
	}
	v, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return renderNotFound(c)
		}
		return renderServerError(c)
	}
	labels, err := h.VenueRepo.GenreLabels(c.Request().Context(), id)
	if err != nil {
		return renderServerError(c)
	}
	return render(c, "edit_venue.html", echo.Map{
		"Venue":        v,
		"Genres":       labels,
		"GenreChoices": view.Genres,
	})
}

// Edit handles POST /venues/:id/edit. Every scalar field is overwritten
// with the submitted values and the genre set is replaced wholesale.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return renderNotFound(c)
	}
	editURL := fmt.Sprintf("/venues/%d/edit", id)
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return flashRedirect(c, "Invalid form submission.", editURL)
	}
	if errs := f.Validate(); len(errs) > 0 {
		return flashRedirect(c, form.JoinErrors(errs), editURL)
	}
	v := f.Model()
	v.ID = id
	if err := h.VenueRepo.Update(c.Request().Context(), v, f.Genres); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return renderNotFound(c)
		}
		return flashRedirect(c, "An error occurred. Venue "+v.Name+" could not be updated.", "/")
	}
	return flashRedirect(c, "Venue "+v.Name+" was successfully updated!", fmt.Sprintf("/venues/%d", id))
}
