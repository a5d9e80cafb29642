package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/config"
	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/dashboard"
	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/ops"
	"github.com/ewaldman/brandloom/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	stores  ops.Stores
	cfg     *config.Config
	baseDir string
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st ops.Stores, cfg *config.Config, baseDir string) *Handlers {
	return &Handlers{stores: st, cfg: cfg, baseDir: baseDir}
}

// Request types for each tool

// BrandCreateRequest represents the arguments for brand_create.
type BrandCreateRequest struct {
	Name                string            `json:"name"`
	CoreTones           []string          `json:"core_tones"`
	RefinedTone         string            `json:"refined_tone"`
	AudienceDescription string            `json:"audience_description"`
	AvatarValues        map[string]string `json:"avatar_values"`
	Offers              []brand.Offer     `json:"offers,omitempty"`
}

// BrandIDRequest represents the arguments for the by-ID brand tools.
type BrandIDRequest struct {
	ID string `json:"id"`
}

// BrandUpdateRequest represents the arguments for brand_update.
type BrandUpdateRequest struct {
	ID                  string             `json:"id"`
	Name                *string            `json:"name,omitempty"`
	CoreTones           *[]string          `json:"core_tones,omitempty"`
	RefinedTone         *string            `json:"refined_tone,omitempty"`
	RefinedToneName     *string            `json:"refined_tone_name,omitempty"`
	ToneRules           *[]string          `json:"tone_rules,omitempty"`
	AudienceDescription *string            `json:"audience_description,omitempty"`
	AvatarValues        *map[string]string `json:"avatar_values,omitempty"`
	Offers              *[]brand.Offer     `json:"offers,omitempty"`
}

// BrandExportRequest represents the arguments for brand_export.
type BrandExportRequest struct {
	ID   string `json:"id"`
	Path string `json:"path,omitempty"`
}

// NoteCaptureRequest represents the arguments for note_capture.
type NoteCaptureRequest struct {
	Type       string   `json:"type,omitempty"`
	Title      string   `json:"title,omitempty"`
	Text       string   `json:"text,omitempty"`
	BrandID    string   `json:"brand_id,omitempty"`
	FileName   string   `json:"file_name,omitempty"`
	FileSizeKB float64  `json:"file_size_kb,omitempty"`
	FileType   string   `json:"file_type,omitempty"`
	Duration   string   `json:"duration,omitempty"`
	Platforms  []string `json:"platforms,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// NoteIDRequest represents the arguments for the by-ID note tools.
type NoteIDRequest struct {
	ID string `json:"id"`
}

// NoteListRequest represents the arguments for note_list.
type NoteListRequest struct {
	BrandID string `json:"brand_id,omitempty"`
}

// NoteUpdateRequest represents the arguments for note_update.
type NoteUpdateRequest struct {
	ID        string    `json:"id"`
	BrandID   *string   `json:"brand_id,omitempty"`
	Title     *string   `json:"title,omitempty"`
	Text      *string   `json:"text,omitempty"`
	Type      *string   `json:"type,omitempty"`
	Platforms *[]string `json:"platforms,omitempty"`
	Status    *string   `json:"status,omitempty"`
	Duration  *string   `json:"duration,omitempty"`
	FileType  *string   `json:"file_type,omitempty"`
}

// DashboardViewRequest represents the arguments for dashboard_view.
type DashboardViewRequest struct {
	Query    string `json:"query,omitempty"`
	BrandID  string `json:"brand_id,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Date     string `json:"date,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// ContentGenerateRequest represents the arguments for content_generate.
type ContentGenerateRequest struct {
	Text      string   `json:"text,omitempty"`
	BrandID   string   `json:"brand_id,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
	ContentID string   `json:"content_id,omitempty"`
	Save      bool     `json:"save,omitempty"`
}

// HandleBrandCreate handles the brand_create tool call.
func (h *Handlers) HandleBrandCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BrandCreateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BrandCreate(h.stores, ops.BrandCreateInput{
		Draft: brand.SetupDraft{
			Name:                input.Name,
			CoreTones:           input.CoreTones,
			RefinedTone:         input.RefinedTone,
			AudienceDescription: input.AudienceDescription,
			AvatarValues:        input.AvatarValues,
			Offers:              input.Offers,
		},
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBrandFetch handles the brand_fetch tool call.
func (h *Handlers) HandleBrandFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BrandIDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BrandFetch(h.stores, ops.BrandFetchInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBrandList handles the brand_list tool call.
func (h *Handlers) HandleBrandList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.BrandList(h.stores, ops.BrandListInput{})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleBrandUpdate handles the brand_update tool call.
func (h *Handlers) HandleBrandUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BrandUpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BrandUpdate(h.stores, ops.BrandUpdateInput{
		ID: input.ID,
		Patch: store.BrandPatch{
			Name:                input.Name,
			CoreTones:           input.CoreTones,
			RefinedTone:         input.RefinedTone,
			RefinedToneName:     input.RefinedToneName,
			ToneRules:           input.ToneRules,
			AudienceDescription: input.AudienceDescription,
			AvatarValues:        input.AvatarValues,
			Offers:              input.Offers,
		},
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBrandDelete handles the brand_delete tool call.
func (h *Handlers) HandleBrandDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BrandIDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BrandDelete(h.stores, ops.BrandDeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBrandUse handles the brand_use tool call.
func (h *Handlers) HandleBrandUse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BrandIDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BrandUse(h.stores, ops.BrandUseInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBrandExport handles the brand_export tool call.
func (h *Handlers) HandleBrandExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[BrandExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.BrandExport(h.stores, h.baseDir, ops.BrandExportInput{
		BrandID: input.ID,
		Path:    input.Path,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteCapture handles the note_capture tool call.
func (h *Handlers) HandleNoteCapture(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteCaptureRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.NoteCapture(h.stores, ops.NoteCaptureInput{
		Type:       content.NoteType(input.Type),
		Title:      input.Title,
		Text:       input.Text,
		BrandID:    input.BrandID,
		FileName:   input.FileName,
		FileSizeKB: input.FileSizeKB,
		FileType:   input.FileType,
		Duration:   input.Duration,
		Platforms:  input.Platforms,
		Status:     input.Status,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteFetch handles the note_fetch tool call.
func (h *Handlers) HandleNoteFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteIDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.NoteFetch(h.stores, ops.NoteFetchInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteList handles the note_list tool call.
func (h *Handlers) HandleNoteList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.NoteList(h.stores, ops.NoteListInput{BrandID: input.BrandID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteUpdate handles the note_update tool call.
func (h *Handlers) HandleNoteUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteUpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	patch := store.PiecePatch{
		BrandID:         input.BrandID,
		Title:           input.Title,
		OriginalContent: input.Text,
		Platforms:       input.Platforms,
		Status:          input.Status,
		Duration:        input.Duration,
		FileType:        input.FileType,
	}
	if input.Type != nil {
		t := content.NoteType(*input.Type)
		patch.Type = &t
	}

	result, err := ops.NoteUpdate(h.stores, ops.NoteUpdateInput{ID: input.ID, Patch: patch})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleNoteDelete handles the note_delete tool call.
func (h *Handlers) HandleNoteDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteIDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.NoteDelete(h.stores, ops.NoteDeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDashboardView handles the dashboard_view tool call.
func (h *Handlers) HandleDashboardView(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DashboardViewRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.DashboardView(h.stores, ops.DashboardInput{
		Query:    input.Query,
		BrandID:  input.BrandID,
		Mode:     dashboard.Mode(input.Mode),
		Date:     input.Date,
		Platform: input.Platform,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleContentGenerate handles the content_generate tool call.
func (h *Handlers) HandleContentGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ContentGenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	platforms := input.Platforms
	if len(platforms) == 0 {
		platforms = h.cfg.DefaultPlatforms
	}

	result, err := ops.Generate(ctx, h.stores, newGenerator(h.cfg), ops.GenerateInput{
		Text:      input.Text,
		BrandID:   input.BrandID,
		Platforms: platforms,
		ContentID: input.ContentID,
		Save:      input.Save,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// errorResult creates an MCP error result with a structured JSON payload.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if blErr, ok := err.(*errors.Error); ok {
		errorObj := map[string]any{
			"code":    blErr.Code,
			"message": blErr.Message,
			"status":  blErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths
		if blErr.Code != errors.ErrInternal && blErr.Details != nil {
			errorObj["details"] = blErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	data, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(data)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
