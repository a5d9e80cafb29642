package ops

import (
	"testing"

	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/store"
)

func TestBrandUpdate_HappyPath(t *testing.T) {
	st := newTestStores(t)
	b := mustCreateBrand(t, st, "Before")

	out, err := BrandUpdate(st, BrandUpdateInput{
		ID:    b.ID,
		Patch: store.BrandPatch{Name: stringPtr("After")},
	})
	if err != nil {
		t.Fatalf("BrandUpdate failed: %v", err)
	}
	if out.Brand.Name != "After" {
		t.Errorf("Name = %q, want After", out.Brand.Name)
	}
	if out.Brand.AudienceDescription != "Busy founders" {
		t.Error("unpatched fields must survive")
	}
}

func TestBrandUpdate_Validation(t *testing.T) {
	st := newTestStores(t)
	b := mustCreateBrand(t, st, "Acme")

	_, err := BrandUpdate(st, BrandUpdateInput{Patch: store.BrandPatch{Name: stringPtr("x")}})
	wantErrCode(t, err, errors.ErrInvalidRequest)

	_, err = BrandUpdate(st, BrandUpdateInput{ID: b.ID})
	wantErrCode(t, err, errors.ErrInvalidRequest)

	_, err = BrandUpdate(st, BrandUpdateInput{ID: "missing", Patch: store.BrandPatch{Name: stringPtr("x")}})
	wantErrCode(t, err, errors.ErrNotFound)
}

func TestBrandDelete_HappyPath(t *testing.T) {
	st := newTestStores(t)
	b := mustCreateBrand(t, st, "Doomed")

	out, err := BrandDelete(st, BrandDeleteInput{ID: b.ID})
	if err != nil {
		t.Fatalf("BrandDelete failed: %v", err)
	}
	if !out.Deleted || out.ID != b.ID {
		t.Errorf("out = %+v", out)
	}
	if _, ok := st.Brands.GetByID(b.ID); ok {
		t.Error("brand should be gone")
	}
	if _, ok := st.Brands.Current(); ok {
		t.Error("current selection should be cleared")
	}
}

func TestBrandDelete_NotFound(t *testing.T) {
	st := newTestStores(t)

	_, err := BrandDelete(st, BrandDeleteInput{ID: "missing"})
	wantErrCode(t, err, errors.ErrNotFound)

	_, err = BrandDelete(st, BrandDeleteInput{})
	wantErrCode(t, err, errors.ErrInvalidRequest)
}

func TestBrandDelete_LeavesContentDangling(t *testing.T) {
	st := newTestStores(t)
	b := mustCreateBrand(t, st, "Acme")

	note, err := NoteCapture(st, NoteCaptureInput{Text: "hello world"})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}
	if note.Piece.BrandID != b.ID {
		t.Fatalf("note BrandID = %q, want %q", note.Piece.BrandID, b.ID)
	}

	if _, err := BrandDelete(st, BrandDeleteInput{ID: b.ID}); err != nil {
		t.Fatalf("BrandDelete failed: %v", err)
	}

	got, ok := st.Content.GetByID(note.Piece.ID)
	if !ok {
		t.Fatal("content must survive brand deletion")
	}
	if got.BrandID != b.ID {
		t.Error("content keeps its now-dangling brand reference")
	}
}

func TestBrandFetch(t *testing.T) {
	st := newTestStores(t)
	b := mustCreateBrand(t, st, "Acme")

	out, err := BrandFetch(st, BrandFetchInput{ID: b.ID})
	if err != nil {
		t.Fatalf("BrandFetch failed: %v", err)
	}
	if out.Brand.Name != "Acme" || !out.Current {
		t.Errorf("out = %+v", out)
	}

	_, err = BrandFetch(st, BrandFetchInput{ID: "missing"})
	wantErrCode(t, err, errors.ErrNotFound)
}

func TestBrandList(t *testing.T) {
	st := newTestStores(t)

	out, err := BrandList(st, BrandListInput{})
	if err != nil {
		t.Fatalf("BrandList failed: %v", err)
	}
	if len(out.Items) != 0 || out.CurrentID != "" {
		t.Errorf("empty list = %+v", out)
	}

	a := mustCreateBrand(t, st, "A")
	b := mustCreateBrand(t, st, "B")

	out, err = BrandList(st, BrandListInput{})
	if err != nil {
		t.Fatalf("BrandList failed: %v", err)
	}
	if len(out.Items) != 2 || out.Items[0].ID != a.ID || out.Items[1].ID != b.ID {
		t.Errorf("items = %+v", out.Items)
	}
	if out.CurrentID != b.ID {
		t.Errorf("CurrentID = %q, want %q", out.CurrentID, b.ID)
	}
}

func TestBrandUse(t *testing.T) {
	st := newTestStores(t)
	a := mustCreateBrand(t, st, "A")
	mustCreateBrand(t, st, "B") // current

	out, err := BrandUse(st, BrandUseInput{ID: a.ID})
	if err != nil {
		t.Fatalf("BrandUse failed: %v", err)
	}
	if out.CurrentID != a.ID {
		t.Errorf("CurrentID = %q, want %q", out.CurrentID, a.ID)
	}

	_, err = BrandUse(st, BrandUseInput{ID: "missing"})
	wantErrCode(t, err, errors.ErrNotFound)
}
