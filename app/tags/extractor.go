package tags

import (
	rake "github.com/afjoseph/RAKE.Go"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
)

// Extractor produces ranked (phrase, score) candidates from free text,
// sorted by descending score.
type Extractor interface {
	Run(text string) []arxiv.Tag
}

// RakeExtractor extracts candidate phrases with the RAKE keyword
// extraction algorithm.
type RakeExtractor struct{}

func NewRakeExtractor() *RakeExtractor {
	return &RakeExtractor{}
}

func (e *RakeExtractor) Run(text string) []arxiv.Tag {
	candidates := rake.RunRake(text)
	tags := make([]arxiv.Tag, 0, len(candidates))
	for _, candidate := range candidates {
		tags = append(tags, arxiv.Tag{Phrase: candidate.Key, Score: candidate.Value})
	}
	return tags
}
