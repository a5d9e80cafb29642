package ops

import "github.com/ewaldman/brandloom/internal/errors"

// BrandDeleteInput contains parameters for the BrandDelete operation.
type BrandDeleteInput struct {
	ID string
}

// BrandDeleteOutput contains the result of the BrandDelete operation.
type BrandDeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// BrandDelete hard-removes a brand. Content referencing it is left
// alone; dangling references are tolerated by every reader. If the
// deleted brand was current, the selection becomes empty.
func BrandDelete(st Stores, input BrandDeleteInput) (*BrandDeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if _, ok := st.Brands.GetByID(input.ID); !ok {
		return nil, errors.NewNotFound("brand", input.ID)
	}

	st.Brands.Delete(input.ID)
	return &BrandDeleteOutput{Deleted: true, ID: input.ID}, nil
}
