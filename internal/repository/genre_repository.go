// Package repository contains data access logic separated from HTTP handlers.
// This file holds genre reconciliation, shared by venue and artist create
// and edit operations. Reconciliation runs inside the owning entity's
// transaction so the association tables always see valid foreign keys on
// commit.
package repository

import (
	"context"
	"database/sql"
	"strings"
)

// DedupeLabels trims the submitted genre labels and drops empties and
// duplicates while preserving first-seen order. Submitting
// ["Rock", "Rock"] therefore reconciles to a single genre row.
func DedupeLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// reconcileGenresTx resolves each label to a genre id, creating missing
// genres on the fly. The upsert form relies on the unique index on
// genres.label: LAST_INSERT_ID(id) makes MySQL report the existing row's
// id when the label is already present, so concurrent reconciliations of
// the same new label cannot produce duplicates.
func reconcileGenresTx(ctx context.Context, tx *sql.Tx, labels []string) ([]uint64, error) {
	const q = `INSERT INTO genres (label) VALUES (?) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`
	labels = DedupeLabels(labels)
	ids := make([]uint64, 0, len(labels))
	for _, label := range labels {
		res, err := tx.ExecContext(ctx, q, label)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint64(id))
	}
	return ids, nil
}

// genreLabels loads the genre labels associated with one entity row. The
// join table name and entity column are interpolated from constants held
// by the calling repository, never from user input.
func genreLabels(ctx context.Context, db *sql.DB, joinTable, entityColumn string, entityID uint64) ([]string, error) {
	q := `SELECT g.label FROM genres g
	      JOIN ` + joinTable + ` j ON j.genre_id = g.id
	      WHERE j.` + entityColumn + ` = ?
	      ORDER BY g.id`
	rows, err := db.QueryContext(ctx, q, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
