package store

import (
	"encoding/json"
	"time"

	"github.com/ewaldman/brandloom/internal/brand"
)

// BrandStore owns the brand collection and the "current brand"
// selection. The current brand is a copy, not an index into the
// collection; SetCurrent accepts any value without an existence check.
type BrandStore struct {
	persister Persister

	brands  []brand.Brand
	current *brand.Brand

	nowFn func() time.Time
	idFn  func() string
}

// brandSnapshot is the persisted shape, matching the store name
// brand-storage.
type brandSnapshot struct {
	Brands       []brand.Brand `json:"brands"`
	CurrentBrand *brand.Brand  `json:"currentBrand"`
}

// NewBrandStore loads the persisted snapshot (if any) and returns a
// ready store.
func NewBrandStore(p Persister) (*BrandStore, error) {
	s := &BrandStore{
		persister: p,
		nowFn:     time.Now,
		idFn:      newULID,
	}

	state, ok, err := p.Load(BrandStoreName)
	if err != nil {
		return nil, err
	}
	if ok {
		var snap brandSnapshot
		if err := json.Unmarshal(state, &snap); err != nil {
			return nil, err
		}
		s.brands = snap.Brands
		s.current = snap.CurrentBrand
	}

	return s, nil
}

// Add creates a brand from the given fields, assigning a fresh ID and
// timestamp, appends it to the collection, and makes it the current
// brand. It never fails; validation is the caller's job.
func (s *BrandStore) Add(fields brand.Brand) brand.Brand {
	b := fields
	b.ID = s.idFn()
	b.CreatedAt = s.nowFn()

	s.brands = append(s.brands, b)
	cur := b
	s.current = &cur
	s.persist()
	return b
}

// Update shallow-merges patch into the brand with the given ID. A
// missing ID is silently a no-op. If the updated brand is the current
// brand, the current copy receives the same merge so reads stay
// consistent.
func (s *BrandStore) Update(id string, patch BrandPatch) {
	s.update(id, patch)
}

// update is the not-found signal behind Update, visible to tests.
func (s *BrandStore) update(id string, patch BrandPatch) bool {
	found := false
	for i := range s.brands {
		if s.brands[i].ID == id {
			patch.apply(&s.brands[i])
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if s.current != nil && s.current.ID == id {
		patch.apply(s.current)
	}
	s.persist()
	return true
}

// SetCurrent replaces the current-brand pointer unconditionally. Pass
// nil to clear the selection.
func (s *BrandStore) SetCurrent(b *brand.Brand) {
	if b == nil {
		s.current = nil
	} else {
		cur := *b
		s.current = &cur
	}
	s.persist()
}

// Delete removes the brand with the given ID. If it was the current
// brand the selection becomes empty; no fallback is auto-selected.
// A missing ID is silently a no-op.
func (s *BrandStore) Delete(id string) {
	s.delete(id)
}

func (s *BrandStore) delete(id string) bool {
	kept := s.brands[:0]
	found := false
	for _, b := range s.brands {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return false
	}
	s.brands = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.persist()
	return true
}

// GetByID returns the brand with the given ID, if present.
func (s *BrandStore) GetByID(id string) (brand.Brand, bool) {
	for _, b := range s.brands {
		if b.ID == id {
			return b, true
		}
	}
	return brand.Brand{}, false
}

// All returns the collection in insertion order.
func (s *BrandStore) All() []brand.Brand {
	out := make([]brand.Brand, len(s.brands))
	copy(out, s.brands)
	return out
}

// Current returns the current brand, if one is selected.
func (s *BrandStore) Current() (brand.Brand, bool) {
	if s.current == nil {
		return brand.Brand{}, false
	}
	return *s.current, true
}

// persist snapshots {brands, currentBrand}. Persistence is
// best-effort: failures are not surfaced to callers.
func (s *BrandStore) persist() {
	snap := brandSnapshot{Brands: s.brands, CurrentBrand: s.current}
	state, err := json.Marshal(snap)
	if err != nil {
		return
	}
	_ = s.persister.Save(BrandStoreName, state)
}

// BrandPatch is a partial update: nil fields are left unchanged.
type BrandPatch struct {
	Name                *string            `json:"name,omitempty"`
	CoreTones           *[]string          `json:"coreTones,omitempty"`
	RefinedTone         *string            `json:"refinedTone,omitempty"`
	RefinedToneName     *string            `json:"refinedToneName,omitempty"`
	ToneRules           *[]string          `json:"toneRules,omitempty"`
	AudienceDescription *string            `json:"audienceDescription,omitempty"`
	AvatarValues        *map[string]string `json:"avatarValues,omitempty"`
	Offers              *[]brand.Offer     `json:"offers,omitempty"`
}

func (p BrandPatch) apply(b *brand.Brand) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.CoreTones != nil {
		b.CoreTones = *p.CoreTones
	}
	if p.RefinedTone != nil {
		b.RefinedTone = *p.RefinedTone
	}
	if p.RefinedToneName != nil {
		b.RefinedToneName = *p.RefinedToneName
	}
	if p.ToneRules != nil {
		b.ToneRules = *p.ToneRules
	}
	if p.AudienceDescription != nil {
		b.AudienceDescription = *p.AudienceDescription
	}
	if p.AvatarValues != nil {
		b.AvatarValues = *p.AvatarValues
	}
	if p.Offers != nil {
		b.Offers = *p.Offers
	}
}
