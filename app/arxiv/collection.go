package arxiv

import "sort"

// Collection holds the submissions produced by one query together with the
// query parameters that produced them. A collection is exclusively owned by
// its creator; matching and tagging sweep it whole, never partially.
type Collection struct {
	Source      SourceMode
	Category    string
	Submissions []Submission
}

func NewCollection(source SourceMode, category string) *Collection {
	return &Collection{Source: source, Category: category}
}

// Merge appends every submission of other that is not already present,
// keyed on arXiv identifier, preserving other's order. Identifier equality
// is literal: the same paper under different id formatting counts as two
// records.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	seen := make(map[string]bool, len(c.Submissions))
	for _, sub := range c.Submissions {
		seen[sub.ArxivID] = true
	}
	for _, sub := range other.Submissions {
		if seen[sub.ArxivID] {
			continue
		}
		seen[sub.ArxivID] = true
		c.Submissions = append(c.Submissions, sub)
	}
}

// Relevant returns the submissions with at least one matched keyword,
// sorted by descending weight. The sort is stable: ties keep their
// original relative order.
func (c *Collection) Relevant() []Submission {
	var relevant []Submission
	for _, sub := range c.Submissions {
		if sub.Matched && len(sub.Keywords) > 0 {
			relevant = append(relevant, sub)
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Weight > relevant[j].Weight
	})
	return relevant
}

// RelevantPurified returns the relevant submissions projected onto the
// public field subset, with the stricter presentation tag cut applied to
// each record's deduplicated tags.
func (c *Collection) RelevantPurified(cut TagCut) []Submission {
	relevant := c.Relevant()
	purified := make([]Submission, 0, len(relevant))
	for _, sub := range relevant {
		purified = append(purified, Submission{
			ArxivID:      sub.ArxivID,
			ArxivURL:     sub.ArxivURL,
			Title:        sub.Title,
			Authors:      sub.Authors,
			Subjects:     sub.Subjects,
			SubjectAbbrs: sub.SubjectAbbrs,
			Summary:      sub.Summary,
			AnnounceDate: sub.AnnounceDate,
			Matched:      sub.Matched,
			Keywords:     sub.Keywords,
			Weight:       sub.Weight,
			Tagged:       sub.Tagged,
			Tags:         cut.Apply(sub.Tags),
		})
	}
	return purified
}

// TagCut is the tag selection step: keep candidates scoring above the
// threshold, fall back to the single best candidate when none do, and trim
// to the cap. Candidates arrive sorted by descending score and the cut
// preserves that order.
type TagCut struct {
	Threshold float64
	Cap       int
}

func (tc TagCut) Apply(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	kept := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.Score > tc.Threshold {
			kept = append(kept, tag)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, tags[0])
	}
	if tc.Cap > 0 && len(kept) > tc.Cap {
		kept = kept[:tc.Cap]
	}
	return kept
}
