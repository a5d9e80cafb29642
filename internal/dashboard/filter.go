// Package dashboard derives the visible subset of content pieces from
// the current filter criteria. Filtering is a pure, stateless
// recomputation: O(n) over the collection, insertion order preserved,
// no caching.
package dashboard

import (
	"strings"
	"time"

	"github.com/ewaldman/brandloom/internal/content"
)

// Mode selects which extra predicate applies on top of the search and
// brand predicates. Modes are exclusive: only the active mode's
// predicate runs.
type Mode string

const (
	ModeDate     Mode = "date"
	ModeBrand    Mode = "brand"
	ModePlatform Mode = "platform"
)

// AllBrands is the brand criteria sentinel meaning "no brand
// restriction".
const AllBrands = "all"

// DateLayout is the calendar-date form used by the date filter.
const DateLayout = "2006-01-02"

// Criteria holds every dashboard filter input.
type Criteria struct {
	// Query filters on Title/OriginalContent as a case-insensitive
	// substring. Empty means no text filtering.
	Query string

	// BrandID restricts to one brand unless it is "all" (or empty).
	BrandID string

	// Mode picks the extra predicate: date, brand, or platform.
	Mode Mode

	// Date is the selected calendar date (DateLayout) for ModeDate.
	Date string

	// Platform is the selected platform ID for ModePlatform, with
	// "all" (or empty) meaning no platform restriction.
	Platform string
}

// Filter returns the pieces matching the criteria, in the original
// insertion order. The input slice is not modified.
func Filter(pieces []content.Piece, c Criteria) []content.Piece {
	out := []content.Piece{}
	for _, p := range pieces {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

// Matches applies the criteria to a single piece.
func Matches(p content.Piece, c Criteria) bool {
	if q := strings.ToLower(c.Query); q != "" {
		title := strings.ToLower(p.Title)
		body := strings.ToLower(p.OriginalContent)
		if !strings.Contains(title, q) && !strings.Contains(body, q) {
			return false
		}
	}

	if c.BrandID != "" && c.BrandID != AllBrands && p.BrandID != c.BrandID {
		return false
	}

	switch c.Mode {
	case ModeDate:
		// Only the date component of the timestamp counts.
		return Day(p.CreatedAt) == c.Date
	case ModePlatform:
		if c.Platform != "" && c.Platform != content.AllPlatforms && !p.HasPlatform(c.Platform) {
			return false
		}
	}
	// ModeBrand adds nothing beyond the brand predicate above.
	return true
}

// Day reduces a timestamp to its calendar date string.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// RelativeDay renders a timestamp as "Today", "Yesterday", or a short
// month-day label, relative to now.
func RelativeDay(t, now time.Time) string {
	day := Day(t)
	if day == Day(now) {
		return "Today"
	}
	if day == Day(now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return t.Format("Jan 2")
}
