package tags

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
)

// Pipeline derives a small set of descriptive tags per submission:
// extraction, threshold/cap selection, then fuzzy deduplication.
type Pipeline struct {
	extractor       Extractor
	cut             arxiv.TagCut
	dedupeThreshold int
}

func NewPipeline(extractor Extractor, cut arxiv.TagCut, dedupeThreshold int) *Pipeline {
	return &Pipeline{
		extractor:       extractor,
		cut:             cut,
		dedupeThreshold: dedupeThreshold,
	}
}

// Run sweeps the whole slice; every returned submission is marked tagged.
// The title surrounds the summary so that extraction is biased toward
// title phrases.
func (p *Pipeline) Run(subs []arxiv.Submission) []arxiv.Submission {
	tagged := make([]arxiv.Submission, 0, len(subs))
	for _, sub := range subs {
		candidates := p.extractor.Run(sub.Title + ". " + sub.Summary + " " + sub.Title)
		sub.Tags = p.Dedupe(p.cut.Apply(candidates))
		sub.Tagged = true
		tagged = append(tagged, sub)
	}
	return tagged
}

// Dedupe drops candidates whose partial fuzzy similarity to another
// candidate exceeds the threshold, keeping the longer (more specific)
// phrase; equal lengths keep the earlier candidate. Each unordered pair is
// visited once, skipping candidates already dropped, and survivors keep
// their relative order.
func (p *Pipeline) Dedupe(candidates []arxiv.Tag) []arxiv.Tag {
	if len(candidates) < 2 {
		return candidates
	}

	dropped := make([]bool, len(candidates))
	for i := 0; i < len(candidates); i++ {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(candidates); j++ {
			if dropped[j] {
				continue
			}
			if fuzzy.PartialRatio(candidates[i].Phrase, candidates[j].Phrase) <= p.dedupeThreshold {
				continue
			}
			if len(candidates[j].Phrase) > len(candidates[i].Phrase) {
				dropped[i] = true
				break
			}
			dropped[j] = true
		}
	}

	kept := make([]arxiv.Tag, 0, len(candidates))
	for i, candidate := range candidates {
		if !dropped[i] {
			kept = append(kept, candidate)
		}
	}
	return kept
}
