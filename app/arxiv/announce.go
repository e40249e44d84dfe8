package arxiv

import "time"

const announceCutoffHour = 14

// AnnounceDate computes the date a submission becomes publicly visible from
// its publication timestamp. Submissions published after the 14:00 cutoff
// announce the next cycle, and dates landing on a weekend hold over to the
// following Monday.
func AnnounceDate(published time.Time) string {
	date := time.Date(published.Year(), published.Month(), published.Day(), 0, 0, 0, 0, time.UTC)
	if published.Hour() > announceCutoffHour {
		date = date.AddDate(0, 0, 1)
	}
	switch date.Weekday() {
	case time.Saturday:
		date = date.AddDate(0, 0, 2)
	case time.Sunday:
		date = date.AddDate(0, 0, 1)
	}
	return date.Format("2006-01-02")
}

// ExpectedAnnounceDate returns the announce date a source queried at now
// stamps on its records: the listing page represents today's announcements
// as-is, while API entries carry dates derived from the cutoff rule.
func ExpectedAnnounceDate(now time.Time, mode SourceMode) string {
	if mode == SourceListing {
		return now.Format("2006-01-02")
	}
	return AnnounceDate(now)
}
