package audit

import (
	"regexp"
	"time"
)

// Two date grammars appear in tutorial freshness claims: long-form US dates
// ("January 2, 2026") and ISO dates ("2026-01-02").
var (
	longDateRE = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+[0-9]{1,2},\s+[0-9]{4}\b`)
	isoDateRE  = regexp.MustCompile(`\b20[0-9]{2}-[0-9]{2}-[0-9]{2}\b`)
)

// extractDates returns every parseable date on a line, in match order.
// Matches that fail strict parsing (impossible day/month) are dropped here;
// the caller downgrades the line to unparseable when nothing survives.
func extractDates(line string) []time.Time {
	dates := make([]time.Time, 0, 2)
	for _, m := range longDateRE.FindAllString(line, -1) {
		if t, err := time.Parse("January 2, 2006", m); err == nil {
			dates = append(dates, t)
		}
	}
	for _, m := range isoDateRE.FindAllString(line, -1) {
		if t, err := time.Parse("2006-01-02", m); err == nil {
			dates = append(dates, t)
		}
	}
	return dates
}
