package model

// Artist represents a performer who can be booked for shows.  Artists
// mirror the relationship shape of venues: one-to-many to shows and
// many-to-many to genres through artist_genres.  This struct corresponds
// to a row in the `artists` table.
type Artist struct {
	ID                 uint64 // artists.id
	Name               string // artists.name
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone
	ImageLink          string // artists.image_link
	FacebookLink       string // artists.facebook_link
	WebsiteLink        string // artists.website_link
	SeekingVenue       bool   // artists.seeking_venue
	SeekingDescription string // artists.seeking_description
}
