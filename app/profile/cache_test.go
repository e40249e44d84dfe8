package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".yml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write profile file: %v", err)
	}
}

func TestCache_ExplicitWeights(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "alice", `
recipient: alice@example.com
alias: Alice
categories:
  - cs.LG
keywords:
  tensor network: 5
  quantum error correction: 3
settings:
  enabled: true
`)

	cache := NewCache(dir)
	if err := cache.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := cache.GetProfile("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Weights["tensor network"] != 5 || profile.Weights["quantum error correction"] != 3 {
		t.Errorf("unexpected weights: %v", profile.Weights)
	}
	if profile.Name != "alice" {
		t.Errorf("expected name derived from filename, got %q", profile.Name)
	}
}

func TestCache_RankedListWeights(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "bob", `
recipient: bob@example.com
categories:
  - quant-ph
keyword_list:
  - first interest
  - second interest
  - third interest
settings:
  enabled: true
`)

	cache := NewCache(dir)
	if err := cache.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := cache.GetProfile("bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rank implies weight: first entry gets the list length, decreasing by
	// one per position.
	expected := map[string]int{"first interest": 3, "second interest": 2, "third interest": 1}
	for keyword, weight := range expected {
		if profile.Weights[keyword] != weight {
			t.Errorf("keyword %q: expected weight %d, got %d", keyword, weight, profile.Weights[keyword])
		}
	}
}

func TestCache_KeywordFile(t *testing.T) {
	dir := t.TempDir()

	keywordFile := filepath.Join(dir, "keywords.txt")
	if err := os.WriteFile(keywordFile, []byte("machine learning\n\nspin glass\n"), 0644); err != nil {
		t.Fatalf("failed to write keyword file: %v", err)
	}

	writeProfile(t, dir, "carol", `
recipient: carol@example.com
categories:
  - cond-mat.stat-mech
keyword_file: `+keywordFile+`
settings:
  enabled: true
`)

	cache := NewCache(dir)
	if err := cache.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := cache.GetProfile("carol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Weights["machine learning"] != 2 || profile.Weights["spin glass"] != 1 {
		t.Errorf("unexpected weights from keyword file: %v", profile.Weights)
	}
}

func TestCache_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing recipient",
			content: `
categories: [cs.LG]
keywords: {graph: 1}
`,
		},
		{
			name: "missing categories",
			content: `
recipient: a@example.com
keywords: {graph: 1}
`,
		},
		{
			name: "missing keywords",
			content: `
recipient: a@example.com
categories: [cs.LG]
`,
		},
		{
			name: "threshold out of range",
			content: `
recipient: a@example.com
categories: [cs.LG]
keywords: {graph: 1}
settings:
  partial_threshold: 150
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProfile(t, dir, "bad", test.content)

			cache := NewCache(dir)
			if err := cache.Run(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCache_Categories(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "alice", `
recipient: alice@example.com
categories: [cs.LG, quant-ph]
keywords: {graph: 1}
settings:
  enabled: true
`)
	writeProfile(t, dir, "bob", `
recipient: bob@example.com
categories: [quant-ph, cond-mat.str-el]
keywords: {magnon: 1}
settings:
  enabled: true
`)
	writeProfile(t, dir, "disabled", `
recipient: d@example.com
categories: [hep-th]
keywords: {strings: 1}
settings:
  enabled: false
`)

	cache := NewCache(dir)
	if err := cache.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	categories := cache.Categories()
	seen := make(map[string]bool)
	for _, category := range categories {
		if seen[category] {
			t.Errorf("category %q appears twice in union", category)
		}
		seen[category] = true
	}
	if len(categories) != 3 {
		t.Errorf("expected 3 distinct enabled categories, got %v", categories)
	}
	if seen["hep-th"] {
		t.Error("disabled profile's categories must not be fetched")
	}
}
