package arxiv

// Submission is the normalized representation of one arXiv paper entry,
// produced by either source adapter.

type Submission struct {
	ArxivID      string   `json:"arxiv_id"`
	ArxivURL     string   `json:"arxiv_url"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Subjects     []string `json:"subject"`      // "<full name> (<abbr>)", index-aligned with SubjectAbbrs
	SubjectAbbrs []string `json:"subject_abbr"` // raw category codes, e.g. "cs.LG"
	Summary      string   `json:"summary"`
	AnnounceDate string   `json:"announce_date"` // YYYY-MM-DD

	// Processing stage state. Matched/Tagged distinguish "not yet swept"
	// from "swept with zero hits".
	Matched  bool           `json:"-"`
	Keywords []KeywordMatch `json:"keyword,omitempty"`
	Weight   int            `json:"weight,omitempty"`
	Tagged   bool           `json:"-"`
	Tags     []Tag          `json:"tags,omitempty"`
}

// KeywordMatch records one matched profile keyword together with both
// fuzzy similarity scores that were computed for it.
type KeywordMatch struct {
	Keyword       string `json:"keyword"`
	TokenSetScore int    `json:"token_set_score"`
	PartialScore  int    `json:"partial_score"`
}

// Tag is one extracted descriptive phrase with its extractor score.
type Tag struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Source mode of a collection.

type SourceMode string

const (
	SourceAPI     SourceMode = "api"
	SourceListing SourceMode = "listing"
)

// ListingMode selects which section(s) of a listing page to retrieve.

type ListingMode string

const (
	ListingNew   ListingMode = "new"
	ListingCross ListingMode = "cross"
	ListingBoth  ListingMode = "both"
)

// AbsURL returns the canonical abstract-page URL for an arXiv identifier.
func AbsURL(arxivID string) string {
	return "https://arxiv.org/abs/" + arxivID
}
