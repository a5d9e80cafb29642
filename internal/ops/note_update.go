package ops

import (
	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/store"
)

// NoteUpdateInput contains parameters for the NoteUpdate operation.
type NoteUpdateInput struct {
	ID    string
	Patch store.PiecePatch
}

// NoteUpdateOutput contains the result of the NoteUpdate operation.
type NoteUpdateOutput struct {
	Piece content.Piece `json:"piece"`
}

// NoteUpdate shallow-merges the patch into an existing piece. Missing
// IDs are a silent no-op at the store; here they are NOT_FOUND.
func NoteUpdate(st Stores, input NoteUpdateInput) (*NoteUpdateOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if emptyPiecePatch(input.Patch) {
		return nil, errors.NewInvalidRequest("at least one editable field must be provided")
	}
	if input.Patch.Type != nil && !input.Patch.Type.Valid() {
		return nil, errors.NewInvalidRequest("unknown note type")
	}
	if _, ok := st.Content.GetByID(input.ID); !ok {
		return nil, errors.NewNotFound("note", input.ID)
	}

	st.Content.Update(input.ID, input.Patch)

	updated, _ := st.Content.GetByID(input.ID)
	return &NoteUpdateOutput{Piece: updated}, nil
}

// emptyPiecePatch reports whether no field of the patch is set.
// PiecePatch holds a map pointer, so it is not comparable directly.
func emptyPiecePatch(p store.PiecePatch) bool {
	return p.BrandID == nil && p.Title == nil && p.OriginalContent == nil &&
		p.Type == nil && p.Platforms == nil && p.Status == nil &&
		p.Duration == nil && p.FileType == nil && p.Generated == nil
}

// NoteDeleteInput contains parameters for the NoteDelete operation.
type NoteDeleteInput struct {
	ID string
}

// NoteDeleteOutput contains the result of the NoteDelete operation.
type NoteDeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// NoteDelete hard-removes a piece.
func NoteDelete(st Stores, input NoteDeleteInput) (*NoteDeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if _, ok := st.Content.GetByID(input.ID); !ok {
		return nil, errors.NewNotFound("note", input.ID)
	}

	st.Content.Delete(input.ID)
	return &NoteDeleteOutput{Deleted: true, ID: input.ID}, nil
}

// NoteFetchInput contains parameters for the NoteFetch operation.
type NoteFetchInput struct {
	ID string
}

// NoteFetchOutput contains the result of the NoteFetch operation.
type NoteFetchOutput struct {
	Piece content.Piece `json:"piece"`
}

// NoteFetch returns one piece by ID.
func NoteFetch(st Stores, input NoteFetchInput) (*NoteFetchOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	p, ok := st.Content.GetByID(input.ID)
	if !ok {
		return nil, errors.NewNotFound("note", input.ID)
	}
	return &NoteFetchOutput{Piece: p}, nil
}

// NoteListInput contains parameters for the NoteList operation.
type NoteListInput struct {
	BrandID string // optional; empty means all brands
}

// NoteListOutput contains the result of the NoteList operation.
type NoteListOutput struct {
	Items []content.Piece `json:"items"`
}

// NoteList returns pieces in insertion order, optionally restricted to
// one brand. An unknown brand ID yields an empty list, never an error.
func NoteList(st Stores, input NoteListInput) (*NoteListOutput, error) {
	if input.BrandID == "" || input.BrandID == "all" {
		return &NoteListOutput{Items: st.Content.All()}, nil
	}
	return &NoteListOutput{Items: st.Content.ByBrand(input.BrandID)}, nil
}
