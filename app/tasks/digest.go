package tasks

import (
	"fmt"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
	"github.com/lysyi3m/arxiv-comb/app/cfg"
	"github.com/lysyi3m/arxiv-comb/app/database"
	"github.com/lysyi3m/arxiv-comb/app/match"
	"github.com/lysyi3m/arxiv-comb/app/profile"
)

// DigestBuilder assembles a profile's digest for one announce date from
// stored listings: merge the profile's categories, then run keyword
// matching with the profile's weights. Shared by the send digest task and
// the read-only digest endpoint.
type DigestBuilder struct {
	listingRepo       database.ListingRepository
	subRepo           database.SubmissionRepository
	source            string
	tokenSetThreshold int
	partialThreshold  int
}

func NewDigestBuilder(listingRepo database.ListingRepository, subRepo database.SubmissionRepository) *DigestBuilder {
	cfg := cfg.Get()

	return &DigestBuilder{
		listingRepo:       listingRepo,
		subRepo:           subRepo,
		source:            cfg.Source,
		tokenSetThreshold: cfg.TokenSetThreshold,
		partialThreshold:  cfg.PartialThreshold,
	}
}

// Run returns the matched collection and the total number of stored
// submissions across the profile's categories. Categories without a
// stored listing for the date are skipped; if none are stored the
// builder fails so callers can retry later.
func (b *DigestBuilder) Run(p *profile.Profile, announceDate string) (*arxiv.Collection, int, error) {
	merged := arxiv.NewCollection(arxiv.SourceMode(b.source), "")

	stored := 0
	for _, category := range p.Categories {
		listing, err := b.listingRepo.GetListing(category, b.source, announceDate)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to look up listing for %s: %w", category, err)
		}
		if listing == nil {
			continue
		}

		subs, err := b.subRepo.GetSubmissions(listing.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load submissions for %s: %w", category, err)
		}

		part := arxiv.NewCollection(arxiv.SourceMode(b.source), category)
		part.Submissions = subs
		merged.Merge(part)
		stored++
	}

	if stored == 0 {
		return nil, 0, fmt.Errorf("no stored listings for profile %s on %s", p.Name, announceDate)
	}

	total := len(merged.Submissions)

	tokenSet := b.tokenSetThreshold
	if p.Settings.TokenSetThreshold > 0 {
		tokenSet = p.Settings.TokenSetThreshold
	}
	partial := b.partialThreshold
	if p.Settings.PartialThreshold > 0 {
		partial = p.Settings.PartialThreshold
	}

	matcher := match.NewMatcher(tokenSet, partial)
	merged.Submissions = matcher.Run(merged.Submissions, p.Weights)

	return merged, total, nil
}
