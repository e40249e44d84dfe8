package tags

import (
	"strings"
	"testing"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
)

// fakeExtractor returns a fixed candidate list, ignoring the input text,
// and records what it was asked to extract from.
type fakeExtractor struct {
	candidates []arxiv.Tag
	lastText   string
}

func (f *fakeExtractor) Run(text string) []arxiv.Tag {
	f.lastText = text
	return f.candidates
}

func TestPipeline_SelectThresholdAndCap(t *testing.T) {
	extractor := &fakeExtractor{candidates: []arxiv.Tag{
		{Phrase: "tensor network states", Score: 9.0},
		{Phrase: "quantum circuits", Score: 8.0},
		{Phrase: "variational ansatz", Score: 7.0},
		{Phrase: "numerical results", Score: 4.0},
	}}
	pipeline := NewPipeline(extractor, arxiv.TagCut{Threshold: 5.0, Cap: 2}, 80)

	subs := pipeline.Run([]arxiv.Submission{{Title: "T", Summary: "S"}})

	tags := subs[0].Tags
	if len(tags) != 2 {
		t.Fatalf("expected cap of 2 tags, got %d", len(tags))
	}
	if tags[0].Phrase != "tensor network states" || tags[1].Phrase != "quantum circuits" {
		t.Errorf("selection must preserve extractor order, got %v", tags)
	}
	if !subs[0].Tagged {
		t.Error("submission must be marked tagged")
	}
}

func TestPipeline_TitleBiasedExtractionText(t *testing.T) {
	extractor := &fakeExtractor{candidates: []arxiv.Tag{{Phrase: "anything", Score: 9.0}}}
	pipeline := NewPipeline(extractor, arxiv.TagCut{Threshold: 5.0, Cap: 5}, 80)

	pipeline.Run([]arxiv.Submission{{Title: "My Title", Summary: "My summary."}})

	if extractor.lastText != "My Title. My summary. My Title" {
		t.Errorf("unexpected extraction text: %q", extractor.lastText)
	}
	if strings.Count(extractor.lastText, "My Title") != 2 {
		t.Errorf("title must appear twice in extraction text")
	}
}

func TestPipeline_FallbackToBestCandidate(t *testing.T) {
	extractor := &fakeExtractor{candidates: []arxiv.Tag{
		{Phrase: "weak phrase", Score: 2.0},
		{Phrase: "weaker phrase", Score: 1.0},
	}}
	pipeline := NewPipeline(extractor, arxiv.TagCut{Threshold: 5.0, Cap: 5}, 80)

	subs := pipeline.Run([]arxiv.Submission{{Title: "T", Summary: "S"}})

	if len(subs[0].Tags) != 1 || subs[0].Tags[0].Phrase != "weak phrase" {
		t.Errorf("expected single best candidate fallback, got %v", subs[0].Tags)
	}
}

func TestPipeline_DedupeKeepsLongerPhrase(t *testing.T) {
	pipeline := NewPipeline(nil, arxiv.TagCut{Threshold: 5.0, Cap: 8}, 80)

	deduped := pipeline.Dedupe([]arxiv.Tag{
		{Phrase: "graph neural", Score: 9.0},
		{Phrase: "graph neural networks", Score: 8.5},
		{Phrase: "combinatorial optimization", Score: 8.0},
	})

	if len(deduped) != 2 {
		t.Fatalf("expected 2 tags after dedupe, got %d: %v", len(deduped), deduped)
	}
	// "graph neural" is a fragment of the longer phrase; the longer, more
	// specific phrase survives.
	if deduped[0].Phrase != "graph neural networks" {
		t.Errorf("expected longer phrase kept, got %q", deduped[0].Phrase)
	}
	if deduped[1].Phrase != "combinatorial optimization" {
		t.Errorf("survivor order broken: %v", deduped)
	}
}

func TestPipeline_DedupeTieKeepsEarlier(t *testing.T) {
	pipeline := NewPipeline(nil, arxiv.TagCut{Threshold: 5.0, Cap: 8}, 80)

	deduped := pipeline.Dedupe([]arxiv.Tag{
		{Phrase: "quantum computing", Score: 9.0},
		{Phrase: "quantum computers", Score: 8.0},
	})

	if len(deduped) != 1 {
		t.Fatalf("expected 1 tag after dedupe, got %d: %v", len(deduped), deduped)
	}
	if deduped[0].Phrase != "quantum computing" {
		t.Errorf("equal-length collision must keep the earlier candidate, got %q", deduped[0].Phrase)
	}
}

func TestPipeline_DedupeNeverIncreasesCount(t *testing.T) {
	pipeline := NewPipeline(nil, arxiv.TagCut{Threshold: 5.0, Cap: 8}, 80)

	input := []arxiv.Tag{
		{Phrase: "alpha decay", Score: 9.0},
		{Phrase: "beta decay", Score: 8.0},
		{Phrase: "gamma spectroscopy", Score: 7.0},
	}
	deduped := pipeline.Dedupe(input)

	if len(deduped) > len(input) {
		t.Errorf("dedupe increased tag count: %d > %d", len(deduped), len(input))
	}
}

func TestPipeline_DedupeKeepsSoleCandidate(t *testing.T) {
	pipeline := NewPipeline(nil, arxiv.TagCut{Threshold: 5.0, Cap: 8}, 80)

	deduped := pipeline.Dedupe([]arxiv.Tag{{Phrase: "lonely phrase", Score: 3.0}})

	if len(deduped) != 1 {
		t.Errorf("dedupe must never drop the sole candidate, got %v", deduped)
	}
}

func TestPipeline_DedupeDistinctPhrasesUntouched(t *testing.T) {
	pipeline := NewPipeline(nil, arxiv.TagCut{Threshold: 5.0, Cap: 8}, 80)

	input := []arxiv.Tag{
		{Phrase: "superconducting qubits", Score: 9.0},
		{Phrase: "topological order", Score: 8.0},
	}
	deduped := pipeline.Dedupe(input)

	if len(deduped) != 2 {
		t.Errorf("distinct phrases must survive dedupe, got %v", deduped)
	}
}
