// Package repository contains data access logic for artist operations.
// Artists mirror the venue relationship shape (shows plus a genre set)
// but have no delete operation.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mmirshod/fyyur/internal/model"
)

// ArtistSummary is a reduced artist record used by listing and search
// responses. UpcomingCount is only populated by search.
type ArtistSummary struct {
	ID            uint64
	Name          string
	UpcomingCount int
}

// ArtistShow is one of an artist's shows joined with the hosting venue,
// shaped for the artist detail page.
type ArtistShow struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartsAt       time.Time
}

// ArtistDetail assembles the artist row, its genre labels, and its shows
// partitioned into past and upcoming.
type ArtistDetail struct {
	Artist        model.Artist
	Genres        []string
	PastShows     []ArtistShow
	UpcomingShows []ArtistShow
}

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist together with its genre set inside one
// transaction. On success the generated id is assigned back onto the
// model.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist, genres []string) (err error) {
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

	const qInsert = `INSERT INTO artists
	    (name, city, state, phone, image_link, facebook_link, website_link, seeking_venue, seeking_description)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	return r.replaceGenresTx(ctx, tx, a.ID, genres)
}

// replaceGenresTx rewrites the artist's genre associations from the given
// label list.
func (r *ArtistRepo) replaceGenresTx(ctx context.Context, tx *sql.Tx, artistID uint64, genres []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM artist_genres WHERE artist_id = ?`, artistID); err != nil {
		return err
	}
	ids, err := reconcileGenresTx(ctx, tx, genres)
	if err != nil {
		return err
	}
	const qAssoc = `INSERT INTO artist_genres (artist_id, genre_id) VALUES (?, ?)`
	for _, gid := range ids {
		if _, err := tx.ExecContext(ctx, qAssoc, artistID, gid); err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches an artist by its id. It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT id, name, city, state, phone, image_link, facebook_link, website_link, seeking_venue, seeking_description
	           FROM artists WHERE id = ?`
	var a model.Artist
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink,
		&a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GenreLabels returns the artist's genre labels in genre id order.
func (r *ArtistRepo) GenreLabels(ctx context.Context, artistID uint64) ([]string, error) {
	return genreLabels(ctx, r.db, "artist_genres", "artist_id", artistID)
}

// ListAll returns every artist reduced to id and name, in insertion (id)
// order.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]ArtistSummary, error) {
	const q = `SELECT id, name FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ArtistSummary
	for rows.Next() {
		var a ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName performs a case-insensitive substring match on artist
// names. An empty term matches every artist. Each match carries its
// upcoming show count relative to now.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]ArtistSummary, error) {
	const q = `SELECT a.id, a.name, COUNT(s.id)
	           FROM artists a
	           LEFT JOIN shows s ON s.artist_id = a.id AND s.starts_at > ?
	           WHERE LOWER(a.name) LIKE ?
	           GROUP BY a.id, a.name
	           ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, q, now, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ArtistSummary
	for rows.Next() {
		var a ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.UpcomingCount); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDetail resolves an artist and assembles its detail record: genre
// labels plus shows joined with their venues, partitioned into past and
// upcoming. Returns ErrArtistNotFound for unknown ids.
func (r *ArtistRepo) GetDetail(ctx context.Context, id uint64, now time.Time) (*ArtistDetail, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	labels, err := r.GenreLabels(ctx, id)
	if err != nil {
		return nil, err
	}

	const q = `SELECT v.id, v.name, v.image_link, s.starts_at
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.starts_at`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var shows []ArtistShow
	for rows.Next() {
		var s ArtistShow
		if err := rows.Scan(&s.VenueID, &s.VenueName, &s.VenueImageLink, &s.StartsAt); err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	past, upcoming := splitArtistShows(shows, now)
	return &ArtistDetail{Artist: *a, Genres: labels, PastShows: past, UpcomingShows: upcoming}, nil
}

// Update overwrites every scalar field of the artist and replaces its
// genre set wholesale. Returns ErrArtistNotFound before writing anything
// when the id does not resolve.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist, genres []string) (err error) {
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
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, a.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}

	const qUpdate = `UPDATE artists
	    SET name = ?, city = ?, state = ?, phone = ?,
	        image_link = ?, facebook_link = ?, website_link = ?,
	        seeking_venue = ?, seeking_description = ?
	    WHERE id = ?`
	if _, err = tx.ExecContext(ctx, qUpdate,
		a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
		a.ID,
	); err != nil {
		return err
	}

	return r.replaceGenresTx(ctx, tx, a.ID, genres)
}

// splitArtistShows partitions shows around now: strictly later is
// upcoming, everything else is past.
func splitArtistShows(shows []ArtistShow, now time.Time) (past, upcoming []ArtistShow) {
	for _, s := range shows {
		if s.StartsAt.After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}
