package model

// Venue represents a physical location that can host shows.  A venue
// owns its shows and is linked to genres through the venue_genres
// association table.  This struct corresponds to a row in the
// `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City, State        – location used for the grouped listing.
//  Address            – street address.
//  Phone              – contact phone, stored digits-only.
//  ImageLink          – URL of a promotional image.
//  FacebookLink       – URL of the venue's Facebook page.
//  WebsiteLink        – URL of the venue's own website.
//  SeekingTalent      – whether the venue is currently looking for artists.
//  SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
	ID                 uint64 // venues.id
	Name               string // venues.name
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone
	ImageLink          string // venues.image_link
	FacebookLink       string // venues.facebook_link
	WebsiteLink        string // venues.website_link
	SeekingTalent      bool   // venues.seeking_talent
	SeekingDescription string // venues.seeking_description
}
