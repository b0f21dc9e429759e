package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmirshod/fyyur/internal/model"
	"github.com/mmirshod/fyyur/internal/repository"
)

func newTestContext(t *testing.T) (echo.Context, *Renderer) {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("template parsing failed: %v", err)
	}
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	return c, r
}

func TestRenderHome(t *testing.T) {
	c, r := newTestContext(t)
	var out strings.Builder
	if err := r.Render(&out, "home.html", echo.Map{"Flash": "Venue listed!"}, c); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out.String(), "Venue listed!") {
		t.Fatalf("expected flash message in output")
	}
}

func TestRenderVenuesGrouped(t *testing.T) {
	c, r := newTestContext(t)
	data := echo.Map{
		"Areas": []repository.VenueArea{
			{City: "Cleveland", State: "OH", Venues: []repository.VenueSummary{
				{ID: 1, Name: "The Blue Note", UpcomingCount: 1},
			}},
		},
	}
	var out strings.Builder
	if err := r.Render(&out, "venues.html", data, c); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := out.String()
	if !strings.Contains(html, "Cleveland, OH") || !strings.Contains(html, "The Blue Note") {
		t.Fatalf("grouped listing missing expected content:\n%s", html)
	}
}

func TestRenderVenueDetail_FormatsShowTimes(t *testing.T) {
	c, r := newTestContext(t)
	detail := &repository.VenueDetail{
		Venue:  model.Venue{ID: 1, Name: "The Blue Note", City: "Cleveland", State: "OH"},
		Genres: []string{"Jazz", "Blues"},
		UpcomingShows: []repository.VenueShow{
			{ArtistID: 2, ArtistName: "Guns N Petals", StartsAt: time.Date(2035, 6, 15, 20, 0, 0, 0, time.UTC)},
		},
	}
	var out strings.Builder
	if err := r.Render(&out, "show_venue.html", echo.Map{"Detail": detail}, c); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := out.String()
	if !strings.Contains(html, "Fri Jun 15, 2035 8:00PM") {
		t.Fatalf("expected formatted show time in output:\n%s", html)
	}
	if !strings.Contains(html, "Jazz") || !strings.Contains(html, "Blues") {
		t.Fatalf("expected genre labels in output")
	}
}

func TestRenderEditVenue_MarksSelectedGenres(t *testing.T) {
	c, r := newTestContext(t)
	data := echo.Map{
		"Venue":        &model.Venue{ID: 1, Name: "The Blue Note", City: "Cleveland", State: "OH"},
		"Genres":       []string{"Jazz"},
		"GenreChoices": Genres,
	}
	var out strings.Builder
	if err := r.Render(&out, "edit_venue.html", data, c); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out.String(), `<option value="Jazz" selected>`) {
		t.Fatalf("expected Jazz preselected in edit form:\n%s", out.String())
	}
}

func TestRenderErrorPages(t *testing.T) {
	c, r := newTestContext(t)
	for _, name := range []string{"404.html", "500.html"} {
		var out strings.Builder
		if err := r.Render(&out, name, echo.Map{}, c); err != nil {
			t.Fatalf("render %s failed: %v", name, err)
		}
	}
}
