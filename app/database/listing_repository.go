package database

import (
	"database/sql"
	"fmt"
)

// ListingRepositoryImpl handles database operations for stored listings
type ListingRepositoryImpl struct {
	db *DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *DB) *ListingRepositoryImpl {
	return &ListingRepositoryImpl{db: db}
}

// UpsertListing inserts a listing record or refreshes the fetch timestamp of
// an existing one, and returns its database ID
func (r *ListingRepositoryImpl) UpsertListing(category, source, announceDate string) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO listings (category, source, announce_date)
		VALUES (?, ?, ?)
		ON CONFLICT (category, source, announce_date) DO UPDATE SET
			fetched_at = CURRENT_TIMESTAMP
		RETURNING id
	`, category, source, announceDate).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to upsert listing: %w", err)
	}

	return id, nil
}

// GetListing retrieves a listing by category, source and announce date
func (r *ListingRepositoryImpl) GetListing(category, source, announceDate string) (*Listing, error) {
	var listing Listing
	err := r.db.QueryRow(`
		SELECT id, category, source, announce_date, fetched_at, created_at
		FROM listings
		WHERE category = ? AND source = ? AND announce_date = ?
	`, category, source, announceDate).Scan(
		&listing.ID, &listing.Category, &listing.Source, &listing.AnnounceDate,
		&listing.FetchedAt, &listing.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &listing, nil
}

// GetStats returns aggregate counts for the stats endpoint
func (r *ListingRepositoryImpl) GetStats() (*ListingStats, error) {
	var stats ListingStats
	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       (SELECT COUNT(*) FROM submissions),
		       COALESCE(MAX(announce_date), '')
		FROM listings
	`).Scan(&stats.ListingCount, &stats.SubmissionCount, &stats.LatestDate)

	if err != nil {
		return nil, fmt.Errorf("failed to get listing stats: %w", err)
	}

	return &stats, nil
}
