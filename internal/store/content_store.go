package store

import (
	"encoding/json"
	"time"

	"github.com/ewaldman/brandloom/internal/content"
)

// ContentStore owns the content-piece collection. Pieces reference
// brands by ID only; the store never validates or repairs those
// references.
type ContentStore struct {
	persister Persister

	pieces []content.Piece

	nowFn func() time.Time
	idFn  func() string
}

// contentSnapshot is the persisted shape, matching the store name
// content-storage.
type contentSnapshot struct {
	ContentPieces []content.Piece `json:"contentPieces"`
}

// NewContentStore loads the persisted snapshot (if any) and returns a
// ready store.
func NewContentStore(p Persister) (*ContentStore, error) {
	s := &ContentStore{
		persister: p,
		nowFn:     time.Now,
		idFn:      newULID,
	}

	state, ok, err := p.Load(ContentStoreName)
	if err != nil {
		return nil, err
	}
	if ok {
		var snap contentSnapshot
		if err := json.Unmarshal(state, &snap); err != nil {
			return nil, err
		}
		s.pieces = snap.ContentPieces
	}

	return s, nil
}

// Add creates a piece from the given fields with a fresh ID and
// timestamp. Platforms defaults to an empty set and Status to "draft"
// unless the fields already carry values. Never fails.
func (s *ContentStore) Add(fields content.Piece) content.Piece {
	p := fields
	p.ID = s.idFn()
	p.CreatedAt = s.nowFn()
	if p.Platforms == nil {
		p.Platforms = []string{}
	}
	if p.Status == "" {
		p.Status = content.StatusDraft
	}

	s.pieces = append(s.pieces, p)
	s.persist()
	return p
}

// Update shallow-merges patch into the piece with the given ID. A
// missing ID is silently a no-op.
func (s *ContentStore) Update(id string, patch PiecePatch) {
	s.update(id, patch)
}

// update is the not-found signal behind Update, visible to tests.
func (s *ContentStore) update(id string, patch PiecePatch) bool {
	for i := range s.pieces {
		if s.pieces[i].ID == id {
			patch.apply(&s.pieces[i])
			s.persist()
			return true
		}
	}
	return false
}

// Delete removes the piece with the given ID. A missing ID is silently
// a no-op.
func (s *ContentStore) Delete(id string) {
	s.delete(id)
}

func (s *ContentStore) delete(id string) bool {
	kept := s.pieces[:0]
	found := false
	for _, p := range s.pieces {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return false
	}
	s.pieces = kept
	s.persist()
	return true
}

// GetByID returns the piece with the given ID, if present.
func (s *ContentStore) GetByID(id string) (content.Piece, bool) {
	for _, p := range s.pieces {
		if p.ID == id {
			return p, true
		}
	}
	return content.Piece{}, false
}

// ByBrand returns every piece referencing the given brand ID, in
// insertion order. The result is empty, never nil, when nothing
// matches.
func (s *ContentStore) ByBrand(brandID string) []content.Piece {
	out := []content.Piece{}
	for _, p := range s.pieces {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out
}

// All returns the collection in insertion order.
func (s *ContentStore) All() []content.Piece {
	out := make([]content.Piece, len(s.pieces))
	copy(out, s.pieces)
	return out
}

// persist snapshots the whole collection. Best-effort, like the brand
// store.
func (s *ContentStore) persist() {
	state, err := json.Marshal(contentSnapshot{ContentPieces: s.pieces})
	if err != nil {
		return
	}
	_ = s.persister.Save(ContentStoreName, state)
}

// PiecePatch is a partial update: nil fields are left unchanged.
type PiecePatch struct {
	BrandID         *string                     `json:"brandId,omitempty"`
	Title           *string                     `json:"title,omitempty"`
	OriginalContent *string                     `json:"originalContent,omitempty"`
	Type            *content.NoteType           `json:"type,omitempty"`
	Platforms       *[]string                   `json:"platforms,omitempty"`
	Status          *string                     `json:"status,omitempty"`
	Duration        *string                     `json:"duration,omitempty"`
	FileType        *string                     `json:"fileType,omitempty"`
	Generated       *map[string]content.Variant `json:"generatedContent,omitempty"`
}

func (p PiecePatch) apply(c *content.Piece) {
	if p.BrandID != nil {
		c.BrandID = *p.BrandID
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.OriginalContent != nil {
		c.OriginalContent = *p.OriginalContent
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Platforms != nil {
		c.Platforms = *p.Platforms
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Duration != nil {
		c.Duration = *p.Duration
	}
	if p.FileType != nil {
		c.FileType = *p.FileType
	}
	if p.Generated != nil {
		c.Generated = *p.Generated
	}
}
