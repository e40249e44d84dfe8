package arxiv

import (
	"fmt"
	"regexp"

	"github.com/mmcdole/gofeed"
)

// feedID extracts the identifier from the trailing path segment of an
// abstract-page link, dropping any version suffix.
var feedID = regexp.MustCompile(`/([0-9.]+)(?:v[0-9]+)?$`)

// FeedNormalizer maps already-structured API feed entries onto the same
// submission schema the listing parser produces. A missing link or missing
// publication timestamp signals an upstream format change and fails loudly.
type FeedNormalizer struct{}

func NewFeedNormalizer() *FeedNormalizer {
	return &FeedNormalizer{}
}

func (n *FeedNormalizer) Run(items []*gofeed.Item) ([]Submission, error) {
	subs := make([]Submission, 0, len(items))
	for _, item := range items {
		sub, err := n.normalizeItem(item)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (n *FeedNormalizer) normalizeItem(item *gofeed.Item) (Submission, error) {
	m := feedID.FindStringSubmatch(item.Link)
	if m == nil {
		return Submission{}, fmt.Errorf("feed entry %q has no extractable identifier", item.Link)
	}
	arxivID := m[1]

	if item.PublishedParsed == nil {
		return Submission{}, fmt.Errorf("feed entry %s missing publication timestamp", arxivID)
	}

	authors := make([]string, 0, len(item.Authors))
	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			authors = append(authors, CollapseWhitespace(author.Name))
		}
	}

	// Only codes present in the taxonomy make it into the subject lists,
	// keeping both slices index-aligned.
	var subjects, abbrs []string
	for _, code := range item.Categories {
		name, ok := CategoryName(code)
		if !ok {
			continue
		}
		subjects = append(subjects, fmt.Sprintf("%s (%s)", name, code))
		abbrs = append(abbrs, code)
	}

	return Submission{
		ArxivID:      arxivID,
		ArxivURL:     AbsURL(arxivID),
		Title:        CollapseWhitespace(item.Title),
		Authors:      authors,
		Subjects:     subjects,
		SubjectAbbrs: abbrs,
		Summary:      CollapseWhitespace(item.Description),
		AnnounceDate: AnnounceDate(*item.PublishedParsed),
	}, nil
}
