package database

import (
	"database/sql"
	"fmt"
)

// DigestRepositoryImpl handles database operations for digest delivery records
type DigestRepositoryImpl struct {
	db *DB
}

// NewDigestRepository creates a new digest repository
func NewDigestRepository(db *DB) *DigestRepositoryImpl {
	return &DigestRepositoryImpl{db: db}
}

// GetDigest retrieves the delivery record for a profile and announce date
func (r *DigestRepositoryImpl) GetDigest(profile, announceDate string) (*Digest, error) {
	var digest Digest
	err := r.db.QueryRow(`
		SELECT id, profile, announce_date, status, matched_count, error, sent_at, created_at
		FROM digests
		WHERE profile = ? AND announce_date = ?
	`, profile, announceDate).Scan(
		&digest.ID, &digest.Profile, &digest.AnnounceDate, &digest.Status,
		&digest.MatchedCount, &digest.Error, &digest.SentAt, &digest.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get digest: %w", err)
	}

	return &digest, nil
}

// MarkDigestSent records a successful digest delivery
func (r *DigestRepositoryImpl) MarkDigestSent(profile, announceDate string, matchedCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO digests (profile, announce_date, status, matched_count, sent_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (profile, announce_date) DO UPDATE SET
			status = EXCLUDED.status,
			matched_count = EXCLUDED.matched_count,
			error = '',
			sent_at = CURRENT_TIMESTAMP
	`, profile, announceDate, DigestStatusSent, matchedCount)

	if err != nil {
		return fmt.Errorf("failed to mark digest sent: %w", err)
	}

	return nil
}

// MarkDigestFailed records a failed digest delivery attempt
func (r *DigestRepositoryImpl) MarkDigestFailed(profile, announceDate string, errMsg string) error {
	_, err := r.db.Exec(`
		INSERT INTO digests (profile, announce_date, status, error)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (profile, announce_date) DO UPDATE SET
			status = EXCLUDED.status,
			error = EXCLUDED.error
	`, profile, announceDate, DigestStatusFailed, errMsg)

	if err != nil {
		return fmt.Errorf("failed to mark digest failed: %w", err)
	}

	return nil
}
