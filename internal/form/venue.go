package form

import (
	"strings"

	"github.com/mmirshod/fyyur/internal/model"
)

// VenueForm carries the submitted fields of the venue create and edit
// forms. Field names match the form inputs rendered by the templates.
type VenueForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
	Genres             []string `form:"genres"`
}

// Validate checks required fields and returns a list of field errors; an
// empty list means the form is acceptable.
func (f *VenueForm) Validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "name", f.Name)
	errs = required(errs, "city", f.City)
	errs = required(errs, "state", f.State)
	if len(f.Genres) == 0 {
		errs = append(errs, FieldError{Field: "genres", Message: "select at least one genre"})
	}
	return errs
}

// Model builds the venue record from validated input. Scalar fields are
// trimmed and the phone number is reduced to digits before storage.
func (f *VenueForm) Model() *model.Venue {
	return &model.Venue{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Address:            strings.TrimSpace(f.Address),
		Phone:              NormalizePhone(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		WebsiteLink:        strings.TrimSpace(f.WebsiteLink),
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}
