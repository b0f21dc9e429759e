package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/mmirshod/fyyur/internal/model"
)

// ShowForm carries the submitted fields of the show booking form. Ids and
// the start time arrive as strings and are parsed during validation.
type ShowForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

// Validate parses the submitted ids and start time and returns a list of
// field errors; an empty list means Model will succeed.
func (f *ShowForm) Validate() []FieldError {
	var errs []FieldError
	if _, err := strconv.ParseUint(strings.TrimSpace(f.ArtistID), 10, 64); err != nil {
		errs = append(errs, FieldError{Field: "artist_id", Message: "must be a numeric artist id"})
	}
	if _, err := strconv.ParseUint(strings.TrimSpace(f.VenueID), 10, 64); err != nil {
		errs = append(errs, FieldError{Field: "venue_id", Message: "must be a numeric venue id"})
	}
	if _, err := time.Parse(TimeLayout, strings.TrimSpace(f.StartTime)); err != nil {
		errs = append(errs, FieldError{Field: "start_time", Message: "must look like " + TimeLayout})
	}
	return errs
}

// Model builds the show record from validated input. Call only after
// Validate reported no errors; parse failures here yield zero values.
func (f *ShowForm) Model() *model.Show {
	artistID, _ := strconv.ParseUint(strings.TrimSpace(f.ArtistID), 10, 64)
	venueID, _ := strconv.ParseUint(strings.TrimSpace(f.VenueID), 10, 64)
	startsAt, _ := time.Parse(TimeLayout, strings.TrimSpace(f.StartTime))
	return &model.Show{
		ArtistID: artistID,
		VenueID:  venueID,
		StartsAt: startsAt.UTC(),
	}
}
