package arxiv

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces newlines and runs of whitespace with a single
// space and trims the result. It is idempotent: applying it to an already
// normalized string returns the identical string.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// SplitAuthors splits a raw author line on commas, trims each entry and
// strips any "Authors:" label left over from the listing markup.
func SplitAuthors(raw string) []string {
	raw = strings.ReplaceAll(raw, "Authors:", "")
	parts := strings.Split(raw, ",")
	authors := make([]string, 0, len(parts))
	for _, part := range parts {
		author := CollapseWhitespace(part)
		if author != "" {
			authors = append(authors, author)
		}
	}
	return authors
}

var subjectAbbr = regexp.MustCompile(`\(([^()]+)\)\s*$`)

// SplitSubjects splits a raw subject line on semicolons and returns the
// cleaned subject strings together with the abbreviation codes parsed out
// of each subject's trailing parenthetical. The two slices are index-aligned.
func SplitSubjects(raw string) ([]string, []string) {
	raw = strings.ReplaceAll(raw, "Subjects:", "")
	parts := strings.Split(raw, ";")
	subjects := make([]string, 0, len(parts))
	abbrs := make([]string, 0, len(parts))
	for _, part := range parts {
		subject := CollapseWhitespace(part)
		if subject == "" {
			continue
		}
		abbr := ""
		if m := subjectAbbr.FindStringSubmatch(subject); m != nil {
			abbr = m[1]
		}
		subjects = append(subjects, subject)
		abbrs = append(abbrs, abbr)
	}
	return subjects, abbrs
}
