package database

import (
	"time"
)

type Listing struct {
	ID           int64
	Category     string
	Source       string // "listing" or "api"
	AnnounceDate string // YYYY-MM-DD
	FetchedAt    time.Time
	CreatedAt    time.Time
}

type ListingStats struct {
	ListingCount    int
	SubmissionCount int
	LatestDate      string
}

type Digest struct {
	ID           int64
	Profile      string
	AnnounceDate string
	Status       string // pending, sent, failed
	MatchedCount int
	Error        string
	SentAt       *time.Time
	CreatedAt    time.Time
}

const (
	DigestStatusPending = "pending"
	DigestStatusSent    = "sent"
	DigestStatusFailed  = "failed"
)
