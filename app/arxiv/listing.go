package arxiv

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var listingHeading = regexp.MustCompile(`^Showing new listings for ([A-Za-z]+), `)

// ListingParser extracts submissions from the markup of an arXiv category
// "new submissions" page. A page without the expected headings or without
// the requested section yields an empty result rather than an error; a
// present entry missing one of its fields is treated as an upstream format
// change and fails loudly.
type ListingParser struct{}

func NewListingParser() *ListingParser {
	return &ListingParser{}
}

// Run parses the page markup. The now argument supplies the announce date
// for scraped records and the reference weekday for the sameDate check.
func (p *ListingParser) Run(data []byte, mode ListingMode, sameDate bool, now time.Time) ([]Submission, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing markup: %w", err)
	}

	weekday, ok := p.pageWeekday(doc)
	if !ok {
		slog.Debug("Listing heading not found, returning empty result")
		return nil, nil
	}

	if sameDate && weekday != now.Weekday().String() {
		slog.Debug("Listing weekday does not match current day", "page", weekday, "today", now.Weekday().String())
		return nil, nil
	}

	sections := p.findSections(doc, mode)
	if len(sections) == 0 {
		slog.Debug("Requested listing section not present", "mode", string(mode))
		return nil, nil
	}

	announceDate := now.Format("2006-01-02")

	var subs []Submission
	for _, section := range sections {
		entries := section.NextUntil("h3")
		if entries.Filter("dt").Length() == 0 {
			// Older page layout nests the definition list under the heading
			// instead of inlining dt/dd as siblings.
			if dl := entries.Filter("dl").First(); dl.Length() > 0 {
				entries = dl.Children()
			}
		}

		var parseErr error
		entries.Filter("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
			sub, err := p.parseEntry(dt, dt.Next().Filter("dd"))
			if err != nil {
				parseErr = err
				return false
			}
			sub.AnnounceDate = announceDate
			subs = append(subs, sub)
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}
	}

	return subs, nil
}

// pageWeekday extracts the weekday from the page's date heading.
func (p *ListingParser) pageWeekday(doc *goquery.Document) (string, bool) {
	var weekday string
	doc.Find("h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := listingHeading.FindStringSubmatch(CollapseWhitespace(s.Text())); m != nil {
			weekday = m[1]
			return false
		}
		return true
	})
	return weekday, weekday != ""
}

// findSections returns the section headings matching the retrieval mode,
// in document order.
func (p *ListingParser) findSections(doc *goquery.Document, mode ListingMode) []*goquery.Selection {
	var sections []*goquery.Selection
	doc.Find("h3").Each(func(_ int, s *goquery.Selection) {
		text := CollapseWhitespace(s.Text())
		switch {
		case strings.HasPrefix(text, "New submissions"):
			if mode == ListingNew || mode == ListingBoth {
				sections = append(sections, s)
			}
		case strings.HasPrefix(text, "Cross submissions"), strings.HasPrefix(text, "Cross-lists"):
			if mode == ListingCross || mode == ListingBoth {
				sections = append(sections, s)
			}
		}
	})
	return sections
}

// parseEntry extracts one submission from a definition term (identifier
// link) and its paired definition body (title/authors/subjects/abstract).
func (p *ListingParser) parseEntry(dt, dd *goquery.Selection) (Submission, error) {
	href, ok := dt.Find(`a[href*="/abs/"]`).First().Attr("href")
	if !ok {
		return Submission{}, fmt.Errorf("listing entry missing identifier link")
	}
	_, arxivID, found := strings.Cut(href, "/abs/")
	if !found || arxivID == "" {
		return Submission{}, fmt.Errorf("listing entry has malformed identifier link %q", href)
	}

	if dd.Length() == 0 {
		return Submission{}, fmt.Errorf("listing entry %s missing definition body", arxivID)
	}

	titleNode := dd.Find("div.list-title").First()
	if titleNode.Length() == 0 {
		return Submission{}, fmt.Errorf("listing entry %s missing title", arxivID)
	}
	title := CollapseWhitespace(strings.ReplaceAll(titleNode.Text(), "Title:", ""))

	authorsNode := dd.Find("div.list-authors").First()
	if authorsNode.Length() == 0 {
		return Submission{}, fmt.Errorf("listing entry %s missing authors", arxivID)
	}
	authors := SplitAuthors(authorsNode.Text())

	subjectsNode := dd.Find("div.list-subjects").First()
	if subjectsNode.Length() == 0 {
		return Submission{}, fmt.Errorf("listing entry %s missing subjects", arxivID)
	}
	subjects, abbrs := SplitSubjects(subjectsNode.Text())

	abstractNode := dd.Find("p.mathjax").First()
	if abstractNode.Length() == 0 {
		return Submission{}, fmt.Errorf("listing entry %s missing abstract", arxivID)
	}
	summary := CollapseWhitespace(abstractNode.Text())

	return Submission{
		ArxivID:      arxivID,
		ArxivURL:     AbsURL(arxivID),
		Title:        title,
		Authors:      authors,
		Subjects:     subjects,
		SubjectAbbrs: abbrs,
		Summary:      summary,
	}, nil
}
