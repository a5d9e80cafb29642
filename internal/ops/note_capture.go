package ops

import (
	"fmt"
	"strings"
	"time"

	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/errors"
)

// Defaults applied to captured notes.
const (
	UntitledNote        = "Untitled Note"
	voiceTranscriptStub = "Audio content transcription would appear here..."
	voiceDurationStub   = "0:45"
)

// NoteCaptureInput contains parameters for the NoteCapture operation.
type NoteCaptureInput struct {
	Type    content.NoteType
	Title   string
	Text    string // originalContent for text/audio/video notes
	BrandID string // optional; falls back to current brand, then first

	// Document capture
	FileName   string
	FileSizeKB float64
	FileType   string

	// Audio capture
	Duration string

	Platforms []string
	Status    string
}

// NoteCaptureOutput contains the result of the NoteCapture operation.
type NoteCaptureOutput struct {
	Piece content.Piece `json:"piece"`
}

// NoteCapture creates a content piece with the type-specific defaults
// of the quick-capture flow: text notes take their title from the
// first line, voice notes get a timestamped title and transcript
// placeholder, documents take the file's name and a size summary.
func NoteCapture(st Stores, input NoteCaptureInput) (*NoteCaptureOutput, error) {
	if input.Type == "" {
		input.Type = content.TypeText
	}
	if !input.Type.Valid() {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown note type %q", input.Type))
	}

	piece := content.Piece{
		Type:            input.Type,
		Title:           input.Title,
		OriginalContent: input.Text,
		BrandID:         st.resolveBrandID(input.BrandID),
		Platforms:       input.Platforms,
		Status:          input.Status,
	}

	switch input.Type {
	case content.TypeText:
		if strings.TrimSpace(input.Text) == "" {
			return nil, errors.NewInvalidRequest("note text is required")
		}
		if piece.Title == "" {
			piece.Title = truncateRunes(firstLine(input.Text), MaxTitleRunes)
			if piece.Title == "" {
				piece.Title = UntitledNote
			}
		}

	case content.TypeAudio:
		if piece.Title == "" {
			piece.Title = "Voice Note - " + time.Now().Format("3:04:05 PM")
		}
		if piece.OriginalContent == "" {
			piece.OriginalContent = voiceTranscriptStub
		}
		piece.Duration = input.Duration
		if piece.Duration == "" {
			piece.Duration = voiceDurationStub
		}

	case content.TypeDocument:
		if input.FileName == "" {
			return nil, errors.NewInvalidRequest("file name is required for document notes")
		}
		if piece.Title == "" {
			piece.Title = input.FileName
		}
		if piece.OriginalContent == "" {
			piece.OriginalContent = fmt.Sprintf("Document: %s (%.1fKB)", input.FileName, input.FileSizeKB)
		}
		piece.FileType = input.FileType

	case content.TypeVideo:
		if piece.Title == "" {
			piece.Title = truncateRunes(firstLine(input.Text), MaxTitleRunes)
			if piece.Title == "" {
				piece.Title = UntitledNote
			}
		}
	}

	created := st.Content.Add(piece)
	return &NoteCaptureOutput{Piece: created}, nil
}
