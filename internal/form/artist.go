package form

import (
	"strings"

	"github.com/mmirshod/fyyur/internal/model"
)

// ArtistForm carries the submitted fields of the artist create and edit
// forms.
type ArtistForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
	Genres             []string `form:"genres"`
}

// Validate checks required fields and returns a list of field errors.
func (f *ArtistForm) Validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "name", f.Name)
	errs = required(errs, "city", f.City)
	errs = required(errs, "state", f.State)
	if len(f.Genres) == 0 {
		errs = append(errs, FieldError{Field: "genres", Message: "select at least one genre"})
	}
	return errs
}

// Model builds the artist record from validated input, trimming scalar
// fields and reducing the phone number to digits.
func (f *ArtistForm) Model() *model.Artist {
	return &model.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Phone:              NormalizePhone(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		WebsiteLink:        strings.TrimSpace(f.WebsiteLink),
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}
