package ops

import (
	"context"
	"strings"

	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/generate"
	"github.com/ewaldman/brandloom/internal/store"
)

// GenerateInput contains parameters for the Generate operation.
type GenerateInput struct {
	// Text is the raw content to transform. Required unless ContentID
	// names an existing piece, whose original content is used.
	Text string

	// BrandID selects the voice; falls back to the current brand.
	BrandID string

	// Platforms lists target platform IDs; the caller supplies the
	// configured default when empty.
	Platforms []string

	// ContentID attaches the results to an existing piece instead of
	// drafting from raw text. Per-platform results overwrite earlier
	// ones for the same key (last write wins).
	ContentID string

	// Save creates a new piece carrying the results. Ignored when
	// ContentID is set.
	Save bool
}

// GenerateOutput contains the result of the Generate operation.
type GenerateOutput struct {
	Results map[string]content.Variant `json:"results"`
	Piece   *content.Piece             `json:"piece,omitempty"`
}

// Generate drafts platform-shaped variants of the text in the brand's
// voice. Each platform resolves independently; a failure on one
// platform abandons the whole request.
func Generate(ctx context.Context, st Stores, gen *generate.Generator, input GenerateInput) (*GenerateOutput, error) {
	text := input.Text
	var existing *content.Piece
	if input.ContentID != "" {
		p, ok := st.Content.GetByID(input.ContentID)
		if !ok {
			return nil, errors.NewNotFound("note", input.ContentID)
		}
		existing = &p
		if text == "" {
			text = p.OriginalContent
		}
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewInvalidRequest("please enter some content to transform")
	}

	voice, err := resolveVoice(st, input.BrandID)
	if err != nil {
		return nil, err
	}

	if len(input.Platforms) == 0 {
		return nil, errors.NewInvalidRequest("at least one platform is required")
	}
	platforms := make([]content.Platform, 0, len(input.Platforms))
	for _, id := range input.Platforms {
		p, ok := content.PlatformByID(id)
		if !ok {
			return nil, errors.NewInvalidRequest("unknown platform: " + id)
		}
		platforms = append(platforms, p)
	}

	results := make(map[string]content.Variant, len(platforms))
	for _, p := range platforms {
		variant, err := gen.Draft(ctx, text, voice, p)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		results[p.ID] = variant
	}

	out := &GenerateOutput{Results: results}

	switch {
	case existing != nil:
		merged := make(map[string]content.Variant, len(existing.Generated)+len(results))
		for k, v := range existing.Generated {
			merged[k] = v
		}
		for k, v := range results {
			merged[k] = v
		}
		st.Content.Update(existing.ID, store.PiecePatch{Generated: &merged})
		updated, _ := st.Content.GetByID(existing.ID)
		out.Piece = &updated

	case input.Save:
		title := truncateRunes(text, MaxTitleRunes) + "..."
		created := st.Content.Add(content.Piece{
			BrandID:         voice.ID,
			Title:           title,
			OriginalContent: text,
			Type:            content.TypeText,
			Platforms:       input.Platforms,
			Generated:       results,
		})
		out.Piece = &created
	}

	return out, nil
}

// resolveVoice picks the brand whose tone flavors the draft.
func resolveVoice(st Stores, brandID string) (brand.Brand, error) {
	if brandID != "" {
		b, ok := st.Brands.GetByID(brandID)
		if !ok {
			return brand.Brand{}, errors.NewNotFound("brand", brandID)
		}
		return b, nil
	}
	if cur, ok := st.Brands.Current(); ok {
		return cur, nil
	}
	return brand.Brand{}, errors.NewInvalidRequest("please select a brand first")
}
