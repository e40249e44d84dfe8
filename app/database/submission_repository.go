package database

import (
	"encoding/json"
	"fmt"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
)

// SubmissionRepositoryImpl handles database operations for arXiv submissions
type SubmissionRepositoryImpl struct {
	db *DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *DB) *SubmissionRepositoryImpl {
	return &SubmissionRepositoryImpl{db: db}
}

// StoreSubmissions stores submissions for a listing. Repeated fetches of the
// same listing upsert on (listing_id, arxiv_id), so re-running a fetch task
// never duplicates entries.
func (r *SubmissionRepositoryImpl) StoreSubmissions(listingID int64, subs []arxiv.Submission) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO submissions (
			listing_id, arxiv_id, arxiv_url, title, authors, subjects,
			subject_abbrs, summary, announce_date, tagged, tags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (listing_id, arxiv_id) DO UPDATE SET
			title = EXCLUDED.title,
			authors = EXCLUDED.authors,
			subjects = EXCLUDED.subjects,
			subject_abbrs = EXCLUDED.subject_abbrs,
			summary = EXCLUDED.summary,
			tagged = EXCLUDED.tagged,
			tags = EXCLUDED.tags
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare submission insert: %w", err)
	}
	defer stmt.Close()

	for _, sub := range subs {
		authors, err := json.Marshal(sub.Authors)
		if err != nil {
			return fmt.Errorf("failed to encode authors for %s: %w", sub.ArxivID, err)
		}
		subjects, err := json.Marshal(sub.Subjects)
		if err != nil {
			return fmt.Errorf("failed to encode subjects for %s: %w", sub.ArxivID, err)
		}
		abbrs, err := json.Marshal(sub.SubjectAbbrs)
		if err != nil {
			return fmt.Errorf("failed to encode subject abbreviations for %s: %w", sub.ArxivID, err)
		}
		tags, err := json.Marshal(sub.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags for %s: %w", sub.ArxivID, err)
		}

		_, err = stmt.Exec(listingID, sub.ArxivID, sub.ArxivURL, sub.Title,
			string(authors), string(subjects), string(abbrs), sub.Summary,
			sub.AnnounceDate, sub.Tagged, string(tags))
		if err != nil {
			return fmt.Errorf("failed to store submission %s: %w", sub.ArxivID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submissions: %w", err)
	}

	return nil
}

// GetSubmissions returns the stored submissions for a listing in insertion
// order. Match state is not persisted; it is recomputed per profile.
func (r *SubmissionRepositoryImpl) GetSubmissions(listingID int64) ([]arxiv.Submission, error) {
	rows, err := r.db.Query(`
		SELECT arxiv_id, arxiv_url, title, authors, subjects, subject_abbrs,
		       summary, announce_date, tagged, tags
		FROM submissions
		WHERE listing_id = ?
		ORDER BY id
	`, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}
	defer rows.Close()

	var subs []arxiv.Submission
	for rows.Next() {
		var sub arxiv.Submission
		var authors, subjects, abbrs, tags string
		err := rows.Scan(&sub.ArxivID, &sub.ArxivURL, &sub.Title, &authors,
			&subjects, &abbrs, &sub.Summary, &sub.AnnounceDate, &sub.Tagged, &tags)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}

		if err := json.Unmarshal([]byte(authors), &sub.Authors); err != nil {
			return nil, fmt.Errorf("failed to decode authors for %s: %w", sub.ArxivID, err)
		}
		if err := json.Unmarshal([]byte(subjects), &sub.Subjects); err != nil {
			return nil, fmt.Errorf("failed to decode subjects for %s: %w", sub.ArxivID, err)
		}
		if err := json.Unmarshal([]byte(abbrs), &sub.SubjectAbbrs); err != nil {
			return nil, fmt.Errorf("failed to decode subject abbreviations for %s: %w", sub.ArxivID, err)
		}
		if err := json.Unmarshal([]byte(tags), &sub.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for %s: %w", sub.ArxivID, err)
		}

		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return subs, nil
}

// GetSubmissionCount returns the number of stored submissions for a listing
func (r *SubmissionRepositoryImpl) GetSubmissionCount(listingID int64) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM submissions WHERE listing_id = ?", listingID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get submission count: %w", err)
	}
	return count, nil
}
