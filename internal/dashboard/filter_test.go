package dashboard

import (
	"testing"
	"time"

	"github.com/ewaldman/brandloom/internal/content"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return ts
}

// samplePieces mirrors the two-piece fixture used throughout.
func samplePieces(t *testing.T) []content.Piece {
	t.Helper()
	return []content.Piece{
		{ID: "p1", Title: "Launch day", OriginalContent: "Big launch", CreatedAt: mustTime(t, "2024-01-01T10:00:00Z"), BrandID: "b1"},
		{ID: "p2", Title: "Random", OriginalContent: "other", CreatedAt: mustTime(t, "2024-01-02T10:00:00Z"), BrandID: "b1"},
	}
}

func TestFilter_DateMode_MatchesCalendarDate(t *testing.T) {
	got := Filter(samplePieces(t), Criteria{
		Mode:    ModeDate,
		Date:    "2024-01-01",
		BrandID: AllBrands,
	})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("got %+v, want exactly p1", got)
	}
}

func TestFilter_SearchAndDateCombine(t *testing.T) {
	// "random" matches only p2 textually, but p2 fails the date
	// predicate; p1 matches the date but not the text.
	got := Filter(samplePieces(t), Criteria{
		Query: "random",
		Mode:  ModeDate,
		Date:  "2024-01-01",
	})
	if len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}

func TestFilter_PlatformMode_AllSkipsPlatformCheck(t *testing.T) {
	pieces := samplePieces(t)
	pieces[0].Platforms = []string{"twitter"}
	// p2 has no platforms at all; with the sentinel nothing is excluded.
	got := Filter(pieces, Criteria{
		Mode:     ModePlatform,
		Platform: "all",
	})
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2", len(got))
	}
}

func TestFilter_PlatformMode_Membership(t *testing.T) {
	pieces := samplePieces(t)
	pieces[0].Platforms = []string{"instagram", "twitter"}
	pieces[1].Platforms = []string{"linkedin"}

	got := Filter(pieces, Criteria{Mode: ModePlatform, Platform: "twitter"})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("got %+v, want p1", got)
	}
}

func TestFilter_ModeExclusivity(t *testing.T) {
	// In platform mode the date criteria is ignored entirely, even when
	// set: only the active mode's predicate applies.
	got := Filter(samplePieces(t), Criteria{
		Mode:     ModePlatform,
		Platform: "all",
		Date:     "1999-12-31",
	})
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2 (date must be ignored in platform mode)", len(got))
	}

	// Brand mode adds nothing beyond the brand predicate.
	got = Filter(samplePieces(t), Criteria{Mode: ModeBrand, Date: "1999-12-31"})
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2 (date must be ignored in brand mode)", len(got))
	}
}

func TestFilter_BrandPredicate(t *testing.T) {
	pieces := samplePieces(t)
	pieces[1].BrandID = "b2"

	got := Filter(pieces, Criteria{Mode: ModeBrand, BrandID: "b2"})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("got %+v, want p2", got)
	}

	// "all" and empty are equivalent sentinels.
	if got := Filter(pieces, Criteria{Mode: ModeBrand, BrandID: AllBrands}); len(got) != 2 {
		t.Errorf("brand=all should not restrict, got %d", len(got))
	}
	if got := Filter(pieces, Criteria{Mode: ModeBrand}); len(got) != 2 {
		t.Errorf("empty brand should not restrict, got %d", len(got))
	}
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	pieces := samplePieces(t)

	got := Filter(pieces, Criteria{Query: "LAUNCH", Mode: ModeBrand})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("got %+v, want p1", got)
	}

	// Body matches count too.
	got = Filter(pieces, Criteria{Query: "OTHER", Mode: ModeBrand})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("got %+v, want p2", got)
	}
}

func TestFilter_EmptyQueryMatchesEmptyContent(t *testing.T) {
	pieces := []content.Piece{{ID: "p1", Title: "", OriginalContent: ""}}
	if got := Filter(pieces, Criteria{Mode: ModeBrand}); len(got) != 1 {
		t.Error("empty query must not filter pieces with empty fields")
	}
	if got := Filter(pieces, Criteria{Query: "x", Mode: ModeBrand}); len(got) != 0 {
		t.Error("empty fields must not match a non-empty query")
	}
}

func TestFilter_PreservesInsertionOrder(t *testing.T) {
	day := mustTime(t, "2024-01-01T08:00:00Z")
	var pieces []content.Piece
	for _, id := range []string{"a", "b", "c", "d"} {
		pieces = append(pieces, content.Piece{ID: id, Title: "note", CreatedAt: day})
	}

	got := Filter(pieces, Criteria{Mode: ModeDate, Date: "2024-01-01"})
	if len(got) != 4 {
		t.Fatalf("got %d pieces, want 4", len(got))
	}
	for i, id := range []string{"a", "b", "c", "d"} {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestDay(t *testing.T) {
	if got := Day(mustTime(t, "2024-03-05T23:59:00Z")); got != "2024-03-05" {
		t.Errorf("Day = %q, want 2024-03-05", got)
	}
}

func TestRelativeDay(t *testing.T) {
	now := mustTime(t, "2024-03-05T12:00:00Z")
	tests := []struct {
		ts   string
		want string
	}{
		{"2024-03-05T01:00:00Z", "Today"},
		{"2024-03-04T23:00:00Z", "Yesterday"},
		{"2024-02-01T10:00:00Z", "Feb 1"},
	}
	for _, tt := range tests {
		if got := RelativeDay(mustTime(t, tt.ts), now); got != tt.want {
			t.Errorf("RelativeDay(%s) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}
