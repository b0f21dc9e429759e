// Package repository contains data access logic for show operations. A
// show is a booking of one artist at one venue at a point in time. There
// is deliberately no double-booking or overlap rule: the same artist may
// be booked twice at the same instant.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mmirshod/fyyur/internal/model"
)

// ShowListing is one show flattened with its venue and artist for the
// shows page.
type ShowListing struct {
	ID              uint64
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartsAt        time.Time
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated id back onto the
// model. Existence of the referenced venue and artist is left to the
// foreign key constraints; a violation surfaces as a driver error the
// caller reports generically.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, starts_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartsAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListAll returns every show joined flat with its venue name and artist
// name/image, in insertion (id) order.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.id, s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.starts_at
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ShowListing
	for rows.Next() {
		var l ShowListing
		if err := rows.Scan(&l.ID, &l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartsAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
