package ops

import (
	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/errors"
)

// BrandFetchInput contains parameters for the BrandFetch operation.
type BrandFetchInput struct {
	ID string
}

// BrandFetchOutput contains the result of the BrandFetch operation.
type BrandFetchOutput struct {
	Brand   brand.Brand `json:"brand"`
	Current bool        `json:"current"`
}

// BrandFetch returns one brand by ID.
func BrandFetch(st Stores, input BrandFetchInput) (*BrandFetchOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	b, ok := st.Brands.GetByID(input.ID)
	if !ok {
		return nil, errors.NewNotFound("brand", input.ID)
	}

	cur, hasCur := st.Brands.Current()
	return &BrandFetchOutput{
		Brand:   b,
		Current: hasCur && cur.ID == b.ID,
	}, nil
}

// BrandListInput contains parameters for the BrandList operation.
type BrandListInput struct{}

// BrandListOutput contains the result of the BrandList operation.
type BrandListOutput struct {
	Items     []brand.Brand `json:"items"`
	CurrentID string        `json:"current_id,omitempty"`
}

// BrandList returns every brand in insertion order plus the current
// selection.
func BrandList(st Stores, _ BrandListInput) (*BrandListOutput, error) {
	out := &BrandListOutput{Items: st.Brands.All()}
	if cur, ok := st.Brands.Current(); ok {
		out.CurrentID = cur.ID
	}
	return out, nil
}

// BrandUseInput contains parameters for the BrandUse operation.
type BrandUseInput struct {
	ID string
}

// BrandUseOutput contains the result of the BrandUse operation.
type BrandUseOutput struct {
	CurrentID string `json:"current_id"`
}

// BrandUse makes a brand the current selection. The store itself
// accepts any value without an existence check; this surface insists
// the brand exists.
func BrandUse(st Stores, input BrandUseInput) (*BrandUseOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	b, ok := st.Brands.GetByID(input.ID)
	if !ok {
		return nil, errors.NewNotFound("brand", input.ID)
	}

	st.Brands.SetCurrent(&b)
	return &BrandUseOutput{CurrentID: b.ID}, nil
}
