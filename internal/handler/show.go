package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmirshod/fyyur/internal/form"
	"github.com/mmirshod/fyyur/internal/queue"
	"github.com/mmirshod/fyyur/internal/repository"
	"github.com/mmirshod/fyyur/internal/service"
)

// ShowHandler serves the show routes. It also holds the venue and artist
// repositories to denormalize names into the show.listed event.
type ShowHandler struct {
	ShowRepo   *repository.ShowRepo
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	AMQPURL    string
}

// NewShowHandler constructs a ShowHandler and panics if any repository is nil.
func NewShowHandler(showRepo *repository.ShowRepo, venueRepo *repository.VenueRepo, artistRepo *repository.ArtistRepo, amqpURL string) *ShowHandler {
	if showRepo == nil || venueRepo == nil || artistRepo == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{ShowRepo: showRepo, VenueRepo: venueRepo, ArtistRepo: artistRepo, AMQPURL: amqpURL}
}

// List handles GET /shows with every show flattened alongside its venue
// and artist.
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.ShowRepo.ListAll(c.Request().Context())
	if err != nil {
		return renderServerError(c)
	}
	return render(c, "shows.html", echo.Map{"Shows": shows})
}

// CreateForm handles GET /shows/create and renders the booking form.
func (h *ShowHandler) CreateForm(c echo.Context) error {
	return render(c, "new_show.html", nil)
}

// Create handles POST /shows/create. Nonexistent venue or artist ids
// surface as a storage failure through the foreign key check and are
// reported generically. On success a show.listed event is published;
// publish errors are already logged and do not affect the response.
func (h *ShowHandler) Create(c echo.Context) error {
	var f form.ShowForm
	if err := c.Bind(&f); err != nil {
		return flashRedirect(c, "Invalid form submission.", "/shows/create")
	}
	if errs := f.Validate(); len(errs) > 0 {
		return flashRedirect(c, form.JoinErrors(errs), "/shows/create")
	}
	s := f.Model()
	ctx := c.Request().Context()
	if err := h.ShowRepo.Create(ctx, s); err != nil {
		return flashRedirect(c, "An error occurred. Show could not be listed.", "/")
	}

	event := queue.ShowListedEvent{
		ShowID:   s.ID,
		VenueID:  s.VenueID,
		ArtistID: s.ArtistID,
		StartsAt: s.StartsAt.Format(form.TimeLayout),
		ListedAt: time.Now().UTC().Format(form.TimeLayout),
	}
	if v, err := h.VenueRepo.GetByID(ctx, s.VenueID); err == nil {
		event.VenueName = v.Name
	}
	if a, err := h.ArtistRepo.GetByID(ctx, s.ArtistID); err == nil {
		event.ArtistName = a.Name
	}
	_ = service.PublishShowListed(ctx, h.AMQPURL, event)

	return flashRedirect(c, "Show was successfully listed!", "/")
}
