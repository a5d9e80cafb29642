package ops

import (
	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/store"
)

// BrandUpdateInput contains parameters for the BrandUpdate operation.
type BrandUpdateInput struct {
	ID    string
	Patch store.BrandPatch
}

// BrandUpdateOutput contains the result of the BrandUpdate operation.
type BrandUpdateOutput struct {
	Brand brand.Brand `json:"brand"`
}

// BrandUpdate shallow-merges the patch into an existing brand. The
// store itself no-ops on a missing ID; this layer reports NOT_FOUND so
// callers get an answer.
func BrandUpdate(st Stores, input BrandUpdateInput) (*BrandUpdateOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if input.Patch == (store.BrandPatch{}) {
		return nil, errors.NewInvalidRequest("at least one editable field must be provided")
	}
	if _, ok := st.Brands.GetByID(input.ID); !ok {
		return nil, errors.NewNotFound("brand", input.ID)
	}

	st.Brands.Update(input.ID, input.Patch)

	updated, _ := st.Brands.GetByID(input.ID)
	return &BrandUpdateOutput{Brand: updated}, nil
}
