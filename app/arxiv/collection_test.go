package arxiv

import (
	"reflect"
	"testing"
)

func idSet(c *Collection) map[string]bool {
	ids := make(map[string]bool, len(c.Submissions))
	for _, sub := range c.Submissions {
		ids[sub.ArxivID] = true
	}
	return ids
}

func collectionWith(ids ...string) *Collection {
	c := NewCollection(SourceListing, "cs.LG")
	for _, id := range ids {
		c.Submissions = append(c.Submissions, Submission{ArxivID: id, ArxivURL: AbsURL(id)})
	}
	return c
}

func TestCollection_Merge(t *testing.T) {
	a := collectionWith("2508.00001", "2508.00002")
	b := collectionWith("2508.00002", "2508.00003")

	a.Merge(b)

	if len(a.Submissions) != 3 {
		t.Fatalf("expected 3 submissions after merge, got %d", len(a.Submissions))
	}
	// Records from b keep their original order after a's records.
	if a.Submissions[2].ArxivID != "2508.00003" {
		t.Errorf("expected 2508.00003 appended last, got %q", a.Submissions[2].ArxivID)
	}
}

func TestCollection_Merge_Idempotent(t *testing.T) {
	a := collectionWith("2508.00001")
	b := collectionWith("2508.00001", "2508.00002")

	a.Merge(b)
	once := idSet(a)

	a.Merge(b)
	twice := idSet(a)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent: %v != %v", once, twice)
	}
	if len(a.Submissions) != 2 {
		t.Errorf("expected 2 submissions, got %d", len(a.Submissions))
	}
}

func TestCollection_Merge_CommutativeIDSet(t *testing.T) {
	left := collectionWith("2508.00001", "2508.00002")
	left.Merge(collectionWith("2508.00002", "2508.00003"))

	right := collectionWith("2508.00002", "2508.00003")
	right.Merge(collectionWith("2508.00001", "2508.00002"))

	if !reflect.DeepEqual(idSet(left), idSet(right)) {
		t.Errorf("merge id-set not commutative: %v != %v", idSet(left), idSet(right))
	}
}

func TestCollection_Relevant(t *testing.T) {
	c := NewCollection(SourceListing, "cs.LG")
	c.Submissions = []Submission{
		{ArxivID: "1", Matched: true, Keywords: []KeywordMatch{{Keyword: "graph"}}, Weight: 3},
		{ArxivID: "2", Matched: true}, // swept, zero hits
		{ArxivID: "3", Matched: true, Keywords: []KeywordMatch{{Keyword: "neural"}}, Weight: 5},
		{ArxivID: "4"}, // not yet matched
		{ArxivID: "5", Matched: true, Keywords: []KeywordMatch{{Keyword: "graph"}}, Weight: 3},
	}

	relevant := c.Relevant()

	if len(relevant) != 3 {
		t.Fatalf("expected 3 relevant submissions, got %d", len(relevant))
	}
	if relevant[0].ArxivID != "3" {
		t.Errorf("expected highest weight first, got %q", relevant[0].ArxivID)
	}
	// Stable sort: equal weights keep original relative order.
	if relevant[1].ArxivID != "1" || relevant[2].ArxivID != "5" {
		t.Errorf("tie order not preserved: %q, %q", relevant[1].ArxivID, relevant[2].ArxivID)
	}
}

func TestCollection_RelevantPurified(t *testing.T) {
	c := NewCollection(SourceListing, "cs.LG")
	c.Submissions = []Submission{
		{
			ArxivID:  "2508.00001",
			ArxivURL: AbsURL("2508.00001"),
			Title:    "Graph Networks",
			Matched:  true,
			Keywords: []KeywordMatch{{Keyword: "graph", PartialScore: 100}},
			Weight:   5,
			Tagged:   true,
			Tags: []Tag{
				{Phrase: "graph networks", Score: 9.0},
				{Phrase: "spectral methods", Score: 8.5},
				{Phrase: "benchmarks", Score: 6.0},
			},
		},
	}

	purified := c.RelevantPurified(TagCut{Threshold: 8.0, Cap: 2})

	if len(purified) != 1 {
		t.Fatalf("expected 1 purified submission, got %d", len(purified))
	}
	tags := purified[0].Tags
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags after presentation cut, got %d", len(tags))
	}
	if tags[0].Phrase != "graph networks" || tags[1].Phrase != "spectral methods" {
		t.Errorf("presentation cut broke tag order: %v", tags)
	}

	// Internal tags remain untouched on the collection.
	if len(c.Submissions[0].Tags) != 3 {
		t.Errorf("purify must not mutate the collection, got %d tags", len(c.Submissions[0].Tags))
	}
}

func TestTagCut_NeverEmptyForNonEmptyInput(t *testing.T) {
	cut := TagCut{Threshold: 100.0, Cap: 5}

	tags := cut.Apply([]Tag{{Phrase: "only candidate", Score: 1.0}})
	if len(tags) != 1 {
		t.Fatalf("expected single best candidate fallback, got %d tags", len(tags))
	}
	if tags[0].Phrase != "only candidate" {
		t.Errorf("unexpected fallback tag: %v", tags[0])
	}
}

func TestTagCut_CapPreservesOrder(t *testing.T) {
	cut := TagCut{Threshold: 1.0, Cap: 2}

	tags := cut.Apply([]Tag{
		{Phrase: "first", Score: 9.0},
		{Phrase: "second", Score: 8.0},
		{Phrase: "third", Score: 7.0},
	})

	if len(tags) != 2 || tags[0].Phrase != "first" || tags[1].Phrase != "second" {
		t.Errorf("cap must keep top-scored candidates in extractor order, got %v", tags)
	}
}

func TestTagCut_EmptyInput(t *testing.T) {
	cut := TagCut{Threshold: 1.0, Cap: 5}
	if tags := cut.Apply(nil); len(tags) != 0 {
		t.Errorf("expected no tags for empty input, got %v", tags)
	}
}
