package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ewaldman/brandloom/internal/dashboard"
	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/generate"
	"github.com/ewaldman/brandloom/internal/storage"
	"github.com/ewaldman/brandloom/internal/store"
)

// TestFullWorkflow exercises the complete lifecycle over a real SQLite
// database: brand create → capture → generate → dashboard → update →
// delete → reload.
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := storage.Init(tmpDir)
	require.NoError(t, err)
	defer db.Close()

	snaps := storage.NewSnapshots(db)
	brands, err := store.NewBrandStore(snaps)
	require.NoError(t, err)
	pieces, err := store.NewContentStore(snaps)
	require.NoError(t, err)
	st := Stores{Brands: brands, Content: pieces}

	// 1. Create a brand; it becomes current.
	createOut, err := BrandCreate(st, BrandCreateInput{Draft: completeDraft()})
	require.NoError(t, err)
	brandID := createOut.Brand.ID
	require.NotEmpty(t, brandID)

	cur, ok := st.Brands.Current()
	require.True(t, ok)
	require.Equal(t, brandID, cur.ID)

	// 2. Capture a note; attribution falls back to the current brand.
	noteOut, err := NoteCapture(st, NoteCaptureInput{Text: "Launch day\nBig launch details."})
	require.NoError(t, err)
	require.Equal(t, brandID, noteOut.Piece.BrandID)
	require.Equal(t, "Launch day", noteOut.Piece.Title)
	noteID := noteOut.Piece.ID

	// 3. Generate variants attached to the note.
	genOut, err := Generate(context.Background(), st, &generate.Generator{}, GenerateInput{
		ContentID: noteID,
		Platforms: []string{"twitter"},
	})
	require.NoError(t, err)
	require.NotNil(t, genOut.Piece)
	require.Contains(t, genOut.Piece.Generated, "twitter")

	// 4. Dashboard sees the note today.
	dashOut, err := DashboardView(st, DashboardInput{})
	require.NoError(t, err)
	require.Len(t, dashOut.Items, 1)
	require.Equal(t, "Acme", dashOut.Items[0].BrandName)
	require.Equal(t, "Today", dashOut.Items[0].Day)

	// 5. Update the note's status.
	_, err = NoteUpdate(st, NoteUpdateInput{
		ID:    noteID,
		Patch: store.PiecePatch{Status: stringPtr("published")},
	})
	require.NoError(t, err)

	// 6. Export the brand with its content.
	exportOut, err := BrandExport(st, tmpDir, BrandExportInput{BrandID: brandID})
	require.NoError(t, err)
	require.Equal(t, 1, exportOut.Count)

	// 7. Everything survives a cold reload from the database.
	brands2, err := store.NewBrandStore(snaps)
	require.NoError(t, err)
	pieces2, err := store.NewContentStore(snaps)
	require.NoError(t, err)
	st2 := Stores{Brands: brands2, Content: pieces2}

	reloaded, err := NoteFetch(st2, NoteFetchInput{ID: noteID})
	require.NoError(t, err)
	require.Equal(t, "published", reloaded.Piece.Status)
	require.Contains(t, reloaded.Piece.Generated, "twitter")

	cur2, ok := st2.Brands.Current()
	require.True(t, ok)
	require.Equal(t, brandID, cur2.ID)

	// 8. Delete the brand; content survives with a dangling reference.
	_, err = BrandDelete(st2, BrandDeleteInput{ID: brandID})
	require.NoError(t, err)
	_, ok = st2.Brands.Current()
	require.False(t, ok)

	still, err := NoteFetch(st2, NoteFetchInput{ID: noteID})
	require.NoError(t, err)
	require.Equal(t, brandID, still.Piece.BrandID)

	// 9. Delete the note; fetch now reports NOT_FOUND.
	_, err = NoteDelete(st2, NoteDeleteInput{ID: noteID})
	require.NoError(t, err)
	_, err = NoteFetch(st2, NoteFetchInput{ID: noteID})
	require.True(t, errors.Is(err, errors.ErrNotFound))

	// 10. The dashboard is empty again in brand mode.
	dashOut, err = DashboardView(st2, DashboardInput{Mode: dashboard.ModeBrand})
	require.NoError(t, err)
	require.Empty(t, dashOut.Items)
	require.Equal(t, 0, dashOut.Total)
}
