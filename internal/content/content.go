// Package content defines the content-piece entity: a single captured
// or generated unit of content, optionally linked to a brand.
package content

import "time"

// NoteType discriminates the kind of captured content.
type NoteType string

const (
	TypeText     NoteType = "text"
	TypeAudio    NoteType = "audio"
	TypeVideo    NoteType = "video"
	TypeDocument NoteType = "document"
)

// KnownTypes lists all valid note types.
var KnownTypes = []NoteType{TypeText, TypeAudio, TypeVideo, TypeDocument}

// Valid reports whether t is a known note type.
func (t NoteType) Valid() bool {
	for _, k := range KnownTypes {
		if t == k {
			return true
		}
	}
	return false
}

// StatusDraft is the default lifecycle tag for new pieces. Status is
// otherwise free form.
const StatusDraft = "draft"

// Piece is a single content piece. BrandID is a reference only:
// deleting a brand does not cascade here, so readers must tolerate
// dangling references.
type Piece struct {
	// ID is a ULID that uniquely identifies this piece
	ID string `json:"id"`

	// BrandID references a Brand.ID, possibly dangling
	BrandID string `json:"brandId"`

	Title           string `json:"title"`
	OriginalContent string `json:"originalContent"`

	// Type is one of text, audio, video, document
	Type NoteType `json:"type"`

	// Platforms is the set of target platform IDs, default empty
	Platforms []string `json:"platforms"`

	// Status is a free-form lifecycle tag, default "draft"
	Status string `json:"status"`

	// Duration is populated for audio pieces only (e.g. "0:45")
	Duration string `json:"duration,omitempty"`

	// FileType is populated for document pieces only (MIME type)
	FileType string `json:"fileType,omitempty"`

	// Generated holds the per-platform drafted variants, keyed by
	// platform ID. Later generations overwrite earlier ones per key.
	Generated map[string]Variant `json:"generatedContent,omitempty"`

	// CreatedAt is set once at creation and never mutated
	CreatedAt time.Time `json:"createdAt"`
}

// Variant is one platform-shaped rendering of a piece.
type Variant struct {
	Content        string `json:"content"`
	Platform       string `json:"platform"` // display name
	CharacterCount int    `json:"characterCount"`
	MaxLength      int    `json:"maxLength"`
}

// HasPlatform reports whether the piece targets the given platform ID.
func (p Piece) HasPlatform(id string) bool {
	for _, pl := range p.Platforms {
		if pl == id {
			return true
		}
	}
	return false
}
