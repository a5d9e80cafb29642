package ops

import (
	"testing"

	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/store"
)

// newTestStores builds memory-backed stores for tests.
func newTestStores(t *testing.T) Stores {
	t.Helper()
	mem := store.NewMemory()
	brands, err := store.NewBrandStore(mem)
	if err != nil {
		t.Fatalf("NewBrandStore failed: %v", err)
	}
	pieces, err := store.NewContentStore(mem)
	if err != nil {
		t.Fatalf("NewContentStore failed: %v", err)
	}
	return Stores{Brands: brands, Content: pieces}
}

// completeDraft returns a setup draft passing every wizard step.
func completeDraft() brand.SetupDraft {
	return brand.SetupDraft{
		Name:                "Acme",
		CoreTones:           []string{"hard-hitting"},
		RefinedTone:         "tactical-minimalist",
		AudienceDescription: "Busy founders",
		AvatarValues: map[string]string{
			"time_vs_money":                   "time_over_money",
			"authenticity_vs_professionalism": "authenticity_first",
			"legacy_vs_monetization":          "legacy_building",
			"expression_vs_optimization":      "self_expression",
		},
	}
}

// mustCreateBrand creates a brand through the op, failing the test on
// error.
func mustCreateBrand(t *testing.T, st Stores, name string) brand.Brand {
	t.Helper()
	draft := completeDraft()
	draft.Name = name
	out, err := BrandCreate(st, BrandCreateInput{Draft: draft})
	if err != nil {
		t.Fatalf("BrandCreate failed: %v", err)
	}
	return out.Brand
}

func wantErrCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !errors.Is(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

func stringPtr(s string) *string {
	return &s
}

func TestResolveBrandID_Fallbacks(t *testing.T) {
	st := newTestStores(t)

	// No brands at all: empty attribution is legal.
	if got := st.resolveBrandID(""); got != "" {
		t.Errorf("resolveBrandID = %q, want empty", got)
	}

	first := mustCreateBrand(t, st, "First")
	second := mustCreateBrand(t, st, "Second") // current

	if got := st.resolveBrandID(""); got != second.ID {
		t.Errorf("resolveBrandID = %q, want current %q", got, second.ID)
	}
	if got := st.resolveBrandID(first.ID); got != first.ID {
		t.Errorf("resolveBrandID = %q, want requested %q", got, first.ID)
	}
	if got := st.resolveBrandID("all"); got != second.ID {
		t.Errorf("resolveBrandID(all) = %q, want current", got)
	}

	// With no current selection, the first brand wins.
	st.Brands.SetCurrent(nil)
	if got := st.resolveBrandID(""); got != first.ID {
		t.Errorf("resolveBrandID = %q, want first %q", got, first.ID)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("héllo wörld", 5); got != "héllo" {
		t.Errorf("got %q", got)
	}
	if got := truncateRunes("short", 50); got != "short" {
		t.Errorf("got %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("  first line  \nsecond"); got != "first line" {
		t.Errorf("got %q", got)
	}
	if got := firstLine("only"); got != "only" {
		t.Errorf("got %q", got)
	}
}
