// Package repository contains data access logic for venue operations.
// Venues own their shows and carry a genre set through the venue_genres
// join table. Mutations run inside a single transaction so an entity row,
// any newly created genres and their associations commit or roll back as
// one unit.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mmirshod/fyyur/internal/model"
)

// VenueSummary is a reduced venue record used by listing and search
// responses. UpcomingCount is the number of the venue's shows strictly
// after the query instant.
type VenueSummary struct {
	ID            uint64
	Name          string
	UpcomingCount int
}

// VenueArea groups the venues of one (city, state) location for the
// grouped listing page.
type VenueArea struct {
	City   string
	State  string
	Venues []VenueSummary
}

// VenueShow is one of a venue's shows joined with the performing artist,
// shaped for the venue detail page.
type VenueShow struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartsAt        time.Time
}

// VenueDetail assembles everything the venue detail page needs: the venue
// row, its genre labels, and its shows partitioned into past and upcoming.
type VenueDetail struct {
	Venue         model.Venue
	Genres        []string
	PastShows     []VenueShow
	UpcomingShows []VenueShow
}

// VenueRepo manages persistence for venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue together with its genre set. Genre labels are
// reconciled (existing labels reused, missing ones created) inside the
// same transaction, so a failure anywhere leaves no partial venue behind.
// On success the generated id is assigned back onto the model.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue, genres []string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	const qInsert = `INSERT INTO venues
	    (name, city, state, address, phone, image_link, facebook_link, website_link, seeking_talent, seeking_description)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, v.WebsiteLink,
		v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	return r.replaceGenresTx(ctx, tx, v.ID, genres)
}

// replaceGenresTx rewrites the venue's genre associations from the given
// label list. Used by Create (no prior associations) and Update (wholesale
// replacement).
func (r *VenueRepo) replaceGenresTx(ctx context.Context, tx *sql.Tx, venueID uint64, genres []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM venue_genres WHERE venue_id = ?`, venueID); err != nil {
		return err
	}
	ids, err := reconcileGenresTx(ctx, tx, genres)
	if err != nil {
		return err
	}
	const qAssoc = `INSERT INTO venue_genres (venue_id, genre_id) VALUES (?, ?)`
	for _, gid := range ids {
		if _, err := tx.ExecContext(ctx, qAssoc, venueID, gid); err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches a venue by its id. It returns ErrVenueNotFound if there
// is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT id, name, city, state, address, phone, image_link, facebook_link, website_link, seeking_talent, seeking_description
	           FROM venues WHERE id = ?`
	var v model.Venue
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink,
		&v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// GenreLabels returns the venue's genre labels in genre id order.
func (r *VenueRepo) GenreLabels(ctx context.Context, venueID uint64) ([]string, error) {
	return genreLabels(ctx, r.db, "venue_genres", "venue_id", venueID)
}

// GetDetail resolves a venue and assembles its detail record: genre
// labels plus shows joined with their artists, partitioned into past
// (starts_at <= now) and upcoming (starts_at > now). The partition is
// exhaustive and disjoint. Returns ErrVenueNotFound for unknown ids.
func (r *VenueRepo) GetDetail(ctx context.Context, id uint64, now time.Time) (*VenueDetail, error) {
	v, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	labels, err := r.GenreLabels(ctx, id)
	if err != nil {
		return nil, err
	}

	const q = `SELECT a.id, a.name, a.image_link, s.starts_at
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.starts_at`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var shows []VenueShow
	for rows.Next() {
		var s VenueShow
		if err := rows.Scan(&s.ArtistID, &s.ArtistName, &s.ArtistImageLink, &s.StartsAt); err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	past, upcoming := splitVenueShows(shows, now)
	return &VenueDetail{Venue: *v, Genres: labels, PastShows: past, UpcomingShows: upcoming}, nil
}

// venueAreaRow is one row of the grouped-listing query, ordered by
// (state, city, id) so consecutive rows with equal location fold into one
// area.
type venueAreaRow struct {
	ID            uint64
	Name          string
	City          string
	State         string
	UpcomingCount int
}

// ListAreas returns every venue grouped by its (city, state) location.
// Locations are ordered by state then city (byte order of the stored
// strings); each venue carries its upcoming show count relative to now.
func (r *VenueRepo) ListAreas(ctx context.Context, now time.Time) ([]VenueArea, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.starts_at > ?
	           GROUP BY v.id, v.name, v.city, v.state
	           ORDER BY v.state, v.city, v.id`
	rows, err := r.db.QueryContext(ctx, q, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []venueAreaRow
	for rows.Next() {
		var row venueAreaRow
		if err := rows.Scan(&row.ID, &row.Name, &row.City, &row.State, &row.UpcomingCount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groupVenueAreas(result), nil
}

// groupVenueAreas folds ordered listing rows into one VenueArea per
// distinct (city, state) pair. Input rows must already be sorted by
// (state, city).
func groupVenueAreas(rows []venueAreaRow) []VenueArea {
	var areas []VenueArea
	for _, row := range rows {
		n := len(areas)
		if n == 0 || areas[n-1].City != row.City || areas[n-1].State != row.State {
			areas = append(areas, VenueArea{City: row.City, State: row.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, VenueSummary{
			ID:            row.ID,
			Name:          row.Name,
			UpcomingCount: row.UpcomingCount,
		})
	}
	return areas
}

// SearchByName performs a case-insensitive substring match on venue
// names. An empty term matches every venue. Each match carries its
// upcoming show count relative to now.
func (r *VenueRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]VenueSummary, error) {
	const q = `SELECT v.id, v.name, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.starts_at > ?
	           WHERE LOWER(v.name) LIKE ?
	           GROUP BY v.id, v.name
	           ORDER BY v.id`
	rows, err := r.db.QueryContext(ctx, q, now, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []VenueSummary
	for rows.Next() {
		var s VenueSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpcomingCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every scalar field of the venue and replaces its
// genre set wholesale with the submitted labels. Callers must supply
// complete data; there are no partial-patch semantics. Returns
// ErrVenueNotFound before writing anything when the id does not resolve.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue, genres []string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Resolve existence first; an UPDATE with identical values reports
	// zero affected rows and cannot distinguish "missing" from "unchanged".
	var one int
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, v.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}

	const qUpdate = `UPDATE venues
	    SET name = ?, city = ?, state = ?, address = ?, phone = ?,
	        image_link = ?, facebook_link = ?, website_link = ?,
	        seeking_talent = ?, seeking_description = ?
	    WHERE id = ?`
	if _, err = tx.ExecContext(ctx, qUpdate,
		v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, v.WebsiteLink,
		v.SeekingTalent, v.SeekingDescription,
		v.ID,
	); err != nil {
		return err
	}

	return r.replaceGenresTx(ctx, tx, v.ID, genres)
}

// DeleteByID removes a venue and all dependent records. The venue's shows
// and genre associations are deleted with it in one transaction, so no
// orphaned show can survive its venue. Returns ErrVenueNotFound when the
// id does not resolve.
func (r *VenueRepo) DeleteByID(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venue_genres WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}

// splitVenueShows partitions shows around now: strictly later is
// upcoming, everything else (including exactly now) is past.
func splitVenueShows(shows []VenueShow, now time.Time) (past, upcoming []VenueShow) {
	for _, s := range shows {
		if s.StartsAt.After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}
