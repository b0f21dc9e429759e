package form

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestNormalizePhone_StripsNonDigits(t *testing.T) {
	got := NormalizePhone("(216) 555-1234")
	if got != "2165551234" {
		t.Fatalf("expected 2165551234, got %q", got)
	}
	if NormalizePhone("") != "" {
		t.Fatalf("expected empty phone to stay empty")
	}
	if NormalizePhone("no digits here") != "" {
		t.Fatalf("expected letters-only input to normalize to empty")
	}
}

func TestVenueFormValidate_RequiredFields(t *testing.T) {
	f := VenueForm{}
	errs := f.Validate()
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors for empty form, got %d: %v", len(errs), errs)
	}

	f = VenueForm{Name: "The Blue Note", City: "Cleveland", State: "OH", Genres: []string{"Jazz"}}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid form, got errors: %v", errs)
	}

	// whitespace-only values must not pass the required check
	f = VenueForm{Name: "  ", City: "Cleveland", State: "OH", Genres: []string{"Jazz"}}
	errs = f.Validate()
	if len(errs) != 1 || errs[0].Field != "name" {
		t.Fatalf("expected a single name error, got %v", errs)
	}
}

func TestVenueFormModel_NormalizesFields(t *testing.T) {
	f := VenueForm{
		Name:   "  The Blue Note ",
		City:   "Cleveland",
		State:  "OH",
		Phone:  "(216) 555-1234",
		Genres: []string{"Jazz", "Blues"},
	}
	v := f.Model()
	if v.Name != "The Blue Note" {
		t.Fatalf("expected trimmed name, got %q", v.Name)
	}
	if v.Phone != "2165551234" {
		t.Fatalf("expected digits-only phone, got %q", v.Phone)
	}
}

func TestArtistFormValidate_RequiresGenres(t *testing.T) {
	f := ArtistForm{Name: "Guns N Petals", City: "San Francisco", State: "CA"}
	errs := f.Validate()
	if len(errs) != 1 || errs[0].Field != "genres" {
		t.Fatalf("expected a single genres error, got %v", errs)
	}
}

func TestShowFormValidateAndModel(t *testing.T) {
	f := ShowForm{ArtistID: "4", VenueID: "7", StartTime: "2035-01-02 20:00:00"}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid show form, got errors: %v", errs)
	}
	s := f.Model()
	if s.ArtistID != 4 || s.VenueID != 7 {
		t.Fatalf("unexpected ids: artist=%d venue=%d", s.ArtistID, s.VenueID)
	}
	want := time.Date(2035, 1, 2, 20, 0, 0, 0, time.UTC)
	if !s.StartsAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, s.StartsAt)
	}

	bad := ShowForm{ArtistID: "x", VenueID: "", StartTime: "tomorrow"}
	if errs := bad.Validate(); len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}
}

func TestJoinErrors(t *testing.T) {
	joined := JoinErrors([]FieldError{
		{Field: "name", Message: "is required"},
		{Field: "genres", Message: "select at least one genre"},
	})
	if joined != "name: is required; genres: select at least one genre" {
		t.Fatalf("unexpected joined errors: %q", joined)
	}
}

// Binding through echo must fill every tagged field, including the
// repeated genres select and the checkbox flag.
func TestVenueFormBindsFromRequest(t *testing.T) {
	vals := url.Values{}
	vals.Set("name", "The Blue Note")
	vals.Set("city", "Cleveland")
	vals.Set("state", "OH")
	vals.Set("phone", "216-555-1234")
	vals.Set("seeking_talent", "true")
	vals.Add("genres", "Jazz")
	vals.Add("genres", "Blues")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/venues/create", strings.NewReader(vals.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, httptest.NewRecorder())

	var f VenueForm
	if err := c.Bind(&f); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if f.Name != "The Blue Note" || f.City != "Cleveland" || f.State != "OH" {
		t.Fatalf("scalar fields not bound: %+v", f)
	}
	if !f.SeekingTalent {
		t.Fatalf("expected seeking_talent to bind true")
	}
	if len(f.Genres) != 2 || f.Genres[0] != "Jazz" || f.Genres[1] != "Blues" {
		t.Fatalf("expected both genres bound, got %v", f.Genres)
	}
}
