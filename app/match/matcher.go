package match

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
)

// Matcher scores submissions against a weighted keyword set. A keyword
// counts as matched when either its token-set similarity or its partial
// (substring) similarity against the record's text exceeds the
// corresponding threshold; the two thresholds are independent so that both
// rough-paraphrase and exact-fragment keywords are caught.
type Matcher struct {
	tokenSetThreshold int
	partialThreshold  int
}

func NewMatcher(tokenSetThreshold, partialThreshold int) *Matcher {
	return &Matcher{
		tokenSetThreshold: tokenSetThreshold,
		partialThreshold:  partialThreshold,
	}
}

// Run sweeps the whole slice: every returned submission carries match
// state, including those with zero hits. Weight is the sum of the profile
// weights of the matched keywords, not of their similarity scores.
func (m *Matcher) Run(subs []arxiv.Submission, interests map[string]int) []arxiv.Submission {
	keywords := make([]string, 0, len(interests))
	for keyword := range interests {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	matched := make([]arxiv.Submission, 0, len(subs))
	for _, sub := range subs {
		blob := matchBlob(sub)

		var hits []arxiv.KeywordMatch
		weight := 0
		for _, keyword := range keywords {
			tokenSet := fuzzy.TokenSetRatio(keyword, blob)
			partial := fuzzy.PartialRatio(keyword, blob)
			if tokenSet > m.tokenSetThreshold || partial > m.partialThreshold {
				hits = append(hits, arxiv.KeywordMatch{
					Keyword:       keyword,
					TokenSetScore: tokenSet,
					PartialScore:  partial,
				})
				weight += interests[keyword]
			}
		}

		sub.Matched = true
		sub.Keywords = hits
		sub.Weight = weight
		matched = append(matched, sub)
	}
	return matched
}

// matchBlob builds the text the keywords are scored against. The title
// appears twice so that title hits outweigh equivalent-length body text.
func matchBlob(sub arxiv.Submission) string {
	return sub.Title + ". " + sub.Title + ". " + strings.Join(sub.Authors, ",") + ". " + sub.Summary
}
