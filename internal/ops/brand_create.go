package ops

import (
	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/errors"
)

// BrandCreateInput contains parameters for the BrandCreate operation.
type BrandCreateInput struct {
	Draft brand.SetupDraft
}

// BrandCreateOutput contains the result of the BrandCreate operation.
type BrandCreateOutput struct {
	Brand brand.Brand `json:"brand"`
}

// BrandCreate validates a completed setup draft and adds the brand.
// The created brand becomes the current brand.
func BrandCreate(st Stores, input BrandCreateInput) (*BrandCreateOutput, error) {
	if problems := input.Draft.Validate(); len(problems) > 0 {
		return nil, errors.NewBrandIncomplete(problems)
	}

	created := st.Brands.Add(input.Draft.Build())
	return &BrandCreateOutput{Brand: created}, nil
}
