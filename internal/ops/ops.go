// Package ops implements the operations behind every surface (CLI,
// MCP, web). The stores themselves are total and validation-free; this
// layer owns caller-side validation and raises the structured errors.
package ops

import (
	"strings"
	"unicode/utf8"

	"github.com/ewaldman/brandloom/internal/store"
)

// Stores bundles the two authoritative collections every operation
// works over.
type Stores struct {
	Brands  *store.BrandStore
	Content *store.ContentStore
}

// MaxTitleRunes caps titles derived from content.
const MaxTitleRunes = 50

// resolveBrandID picks the brand a new piece is attributed to:
// the requested brand, else the current brand, else the first brand,
// else empty. Dangling and empty references are legal for content.
func (s Stores) resolveBrandID(requested string) string {
	if requested != "" && requested != "all" {
		return requested
	}
	if cur, ok := s.Brands.Current(); ok {
		return cur.ID
	}
	if all := s.Brands.All(); len(all) > 0 {
		return all[0].ID
	}
	return ""
}

// firstLine returns the first line of text, trimmed.
func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

// truncateRunes caps s at max runes.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
