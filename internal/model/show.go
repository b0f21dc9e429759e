package model

import "time"

// Show represents a scheduled booking linking one venue, one artist and
// a start time.  Whether a show is "past" or "upcoming" is never stored;
// it is derived from StartsAt against the clock at query time.
//
// Fields:
//  ID       – primary key identifier.
//  VenueID  – venue hosting the show.
//  ArtistID – artist performing the show.
//  StartsAt – when the show begins (UTC).
type Show struct {
	ID       uint64    // shows.id
	VenueID  uint64    // shows.venue_id
	ArtistID uint64    // shows.artist_id
	StartsAt time.Time // shows.starts_at
}
