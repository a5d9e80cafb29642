package ops

import (
	"strings"
	"testing"

	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/errors"
)

func TestNoteCapture_TextNote(t *testing.T) {
	st := newTestStores(t)
	b := mustCreateBrand(t, st, "Acme")

	out, err := NoteCapture(st, NoteCaptureInput{
		Text: "First line of the idea\nMore detail here.",
	})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}

	p := out.Piece
	if p.Type != content.TypeText {
		t.Errorf("Type = %q, want text (default)", p.Type)
	}
	if p.Title != "First line of the idea" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.BrandID != b.ID {
		t.Errorf("BrandID = %q, want current brand", p.BrandID)
	}
	if p.Status != content.StatusDraft {
		t.Errorf("Status = %q, want draft", p.Status)
	}
}

func TestNoteCapture_TextNote_LongFirstLineTruncated(t *testing.T) {
	st := newTestStores(t)

	long := strings.Repeat("x", 80)
	out, err := NoteCapture(st, NoteCaptureInput{Text: long})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}
	if len(out.Piece.Title) != MaxTitleRunes {
		t.Errorf("title length = %d, want %d", len(out.Piece.Title), MaxTitleRunes)
	}
}

func TestNoteCapture_TextNote_RequiresText(t *testing.T) {
	st := newTestStores(t)

	_, err := NoteCapture(st, NoteCaptureInput{Text: "   "})
	wantErrCode(t, err, errors.ErrInvalidRequest)
}

func TestNoteCapture_TitleOverride(t *testing.T) {
	st := newTestStores(t)

	out, err := NoteCapture(st, NoteCaptureInput{Title: "Custom", Text: "body"})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}
	if out.Piece.Title != "Custom" {
		t.Errorf("Title = %q, want Custom", out.Piece.Title)
	}
}

func TestNoteCapture_VoiceNote(t *testing.T) {
	st := newTestStores(t)

	out, err := NoteCapture(st, NoteCaptureInput{Type: content.TypeAudio})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}

	p := out.Piece
	if !strings.HasPrefix(p.Title, "Voice Note - ") {
		t.Errorf("Title = %q, want timestamped voice title", p.Title)
	}
	if p.OriginalContent != "Audio content transcription would appear here..." {
		t.Errorf("OriginalContent = %q", p.OriginalContent)
	}
	if p.Duration != "0:45" {
		t.Errorf("Duration = %q, want stub 0:45", p.Duration)
	}
}

func TestNoteCapture_VoiceNote_ExplicitDuration(t *testing.T) {
	st := newTestStores(t)

	out, err := NoteCapture(st, NoteCaptureInput{Type: content.TypeAudio, Duration: "1:30"})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}
	if out.Piece.Duration != "1:30" {
		t.Errorf("Duration = %q, want 1:30", out.Piece.Duration)
	}
}

func TestNoteCapture_DocumentNote(t *testing.T) {
	st := newTestStores(t)

	out, err := NoteCapture(st, NoteCaptureInput{
		Type:       content.TypeDocument,
		FileName:   "pitch.pdf",
		FileSizeKB: 120.5,
		FileType:   "application/pdf",
	})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}

	p := out.Piece
	if p.Title != "pitch.pdf" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.OriginalContent != "Document: pitch.pdf (120.5KB)" {
		t.Errorf("OriginalContent = %q", p.OriginalContent)
	}
	if p.FileType != "application/pdf" {
		t.Errorf("FileType = %q", p.FileType)
	}
}

func TestNoteCapture_DocumentNote_RequiresFileName(t *testing.T) {
	st := newTestStores(t)

	_, err := NoteCapture(st, NoteCaptureInput{Type: content.TypeDocument})
	wantErrCode(t, err, errors.ErrInvalidRequest)
}

func TestNoteCapture_VideoNote_UntitledFallback(t *testing.T) {
	st := newTestStores(t)

	out, err := NoteCapture(st, NoteCaptureInput{Type: content.TypeVideo})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}
	if out.Piece.Title != UntitledNote {
		t.Errorf("Title = %q, want %q", out.Piece.Title, UntitledNote)
	}
}

func TestNoteCapture_UnknownType(t *testing.T) {
	st := newTestStores(t)

	_, err := NoteCapture(st, NoteCaptureInput{Type: "podcast", Text: "x"})
	wantErrCode(t, err, errors.ErrInvalidRequest)
}

func TestNoteCapture_NoBrandsAtAll(t *testing.T) {
	st := newTestStores(t)

	out, err := NoteCapture(st, NoteCaptureInput{Text: "orphan note"})
	if err != nil {
		t.Fatalf("NoteCapture failed: %v", err)
	}
	if out.Piece.BrandID != "" {
		t.Errorf("BrandID = %q, want empty when no brands exist", out.Piece.BrandID)
	}
}
