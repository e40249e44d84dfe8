package database

import (
	"github.com/lysyi3m/arxiv-comb/app/arxiv"
)

type ListingRepository interface {
	UpsertListing(category, source, announceDate string) (int64, error)
	GetListing(category, source, announceDate string) (*Listing, error)
	GetStats() (*ListingStats, error)
}

type SubmissionRepository interface {
	StoreSubmissions(listingID int64, subs []arxiv.Submission) error
	GetSubmissions(listingID int64) ([]arxiv.Submission, error)
	GetSubmissionCount(listingID int64) (int, error)
}

type DigestRepository interface {
	GetDigest(profile, announceDate string) (*Digest, error)
	MarkDigestSent(profile, announceDate string, matchedCount int) error
	MarkDigestFailed(profile, announceDate string, errMsg string) error
}
