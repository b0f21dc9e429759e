// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. Every
// entity that can be looked up by id has its own not-found sentinel so
// handlers can render the right 404 page without string matching.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue id does not resolve to a row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id does not resolve to a row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show id does not resolve to a row.
var ErrShowNotFound = errors.New("show not found")
