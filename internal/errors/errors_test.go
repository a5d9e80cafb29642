package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		code   ErrorCode
		status int
	}{
		{"invalid request", NewInvalidRequest("bad"), ErrInvalidRequest, 400},
		{"not found", NewNotFound("brand", "b1"), ErrNotFound, 404},
		{"brand incomplete", NewBrandIncomplete([]string{"please enter a brand name"}), ErrBrandIncomplete, 422},
		{"content too long", NewContentTooLong("twitter", 280, 300), ErrContentTooLong, 413},
		{"internal", NewInternal(stderrors.New("boom")), ErrInternal, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if tt.err.Status != tt.status {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.status)
			}
			if tt.err.Error() == "" {
				t.Error("Error() should not be empty")
			}
		})
	}
}

func TestNotFound_Details(t *testing.T) {
	err := NewNotFound("note", "n1")
	if err.Details["kind"] != "note" || err.Details["id"] != "n1" {
		t.Errorf("Details = %v", err.Details)
	}
	if !strings.Contains(err.Message, "note not found: n1") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestIs(t *testing.T) {
	err := NewNotFound("brand", "b1")
	if !Is(err, ErrNotFound) {
		t.Error("Is should match the code")
	}
	if Is(err, ErrInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrNotFound) {
		t.Error("Is should reject non-structured errors")
	}
}
