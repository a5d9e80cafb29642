package mcp

import "github.com/mark3labs/mcp-go/mcp"

var brandCreateToolDef = mcp.NewTool("brand_create",
	mcp.WithDescription("Create a brand from a completed setup draft. The draft must carry a name, at least one core tone, a refined tone available under those core tones, an audience description, and a choice for every value pair. The new brand becomes the current brand."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Brand display name")),
	mcp.WithArray("core_tones", mcp.Required(), mcp.Description("Core tone IDs from the catalog")),
	mcp.WithString("refined_tone", mcp.Required(), mcp.Description("Refined tone ID under one of the chosen core tones")),
	mcp.WithString("audience_description", mcp.Required(), mcp.Description("Who the brand serves")),
	mcp.WithObject("avatar_values", mcp.Required(), mcp.Description("Value-pair ID to chosen side key")),
	mcp.WithArray("offers", mcp.Description("Offers: {name, description, ctaUrl} records")),
)

var brandFetchToolDef = mcp.NewTool("brand_fetch",
	mcp.WithDescription("Fetch one brand by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Brand ID")),
)

var brandListToolDef = mcp.NewTool("brand_list",
	mcp.WithDescription("List every brand in insertion order, with the current selection."),
)

var brandUpdateToolDef = mcp.NewTool("brand_update",
	mcp.WithDescription("Shallow-merge the provided fields into an existing brand. Omitted fields are left unchanged. If the brand is the current brand, the selection is refreshed too."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Brand ID")),
	mcp.WithString("name", mcp.Description("New display name")),
	mcp.WithArray("core_tones", mcp.Description("Replacement core tone IDs")),
	mcp.WithString("refined_tone", mcp.Description("Replacement refined tone ID")),
	mcp.WithString("refined_tone_name", mcp.Description("Replacement refined tone display name")),
	mcp.WithArray("tone_rules", mcp.Description("Replacement style-rule tags")),
	mcp.WithString("audience_description", mcp.Description("Replacement audience description")),
	mcp.WithObject("avatar_values", mcp.Description("Replacement value-pair selections")),
	mcp.WithArray("offers", mcp.Description("Replacement offers list")),
)

var brandDeleteToolDef = mcp.NewTool("brand_delete",
	mcp.WithDescription("Hard-delete a brand. Content referencing it keeps its (now dangling) brand ID. If it was the current brand the selection becomes empty."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Brand ID")),
)

var brandUseToolDef = mcp.NewTool("brand_use",
	mcp.WithDescription("Make a brand the current selection."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Brand ID")),
)

var brandExportToolDef = mcp.NewTool("brand_export",
	mcp.WithDescription("Export one brand and all content referencing it to a JSONL file under the exports directory."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Brand ID")),
	mcp.WithString("path", mcp.Description("Destination path (default: exports/<brand>-<timestamp>.jsonl)")),
)

var noteCaptureToolDef = mcp.NewTool("note_capture",
	mcp.WithDescription("Capture a content piece. Text notes require text and take their title from the first line; voice notes get a timestamped title and transcript placeholder; document notes require file_name. Brand attribution falls back to the current brand."),
	mcp.WithString("type", mcp.Description("One of: text, audio, video, document (default text)")),
	mcp.WithString("title", mcp.Description("Title override")),
	mcp.WithString("text", mcp.Description("Original content")),
	mcp.WithString("brand_id", mcp.Description("Brand to attribute the piece to")),
	mcp.WithString("file_name", mcp.Description("Document file name")),
	mcp.WithNumber("file_size_kb", mcp.Description("Document size in KB")),
	mcp.WithString("file_type", mcp.Description("Document MIME type")),
	mcp.WithString("duration", mcp.Description("Audio duration, e.g. 0:45")),
	mcp.WithArray("platforms", mcp.Description("Target platform IDs (default none)")),
	mcp.WithString("status", mcp.Description("Lifecycle tag (default draft)")),
)

var noteFetchToolDef = mcp.NewTool("note_fetch",
	mcp.WithDescription("Fetch one content piece by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Content piece ID")),
)

var noteListToolDef = mcp.NewTool("note_list",
	mcp.WithDescription("List content pieces in insertion order, optionally restricted to one brand. An unknown brand yields an empty list."),
	mcp.WithString("brand_id", mcp.Description("Brand ID filter; omit or \"all\" for everything")),
)

var noteUpdateToolDef = mcp.NewTool("note_update",
	mcp.WithDescription("Shallow-merge the provided fields into an existing content piece. Omitted fields are left unchanged."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Content piece ID")),
	mcp.WithString("brand_id", mcp.Description("Replacement brand reference")),
	mcp.WithString("title", mcp.Description("Replacement title")),
	mcp.WithString("text", mcp.Description("Replacement original content")),
	mcp.WithString("type", mcp.Description("Replacement type: text, audio, video, document")),
	mcp.WithArray("platforms", mcp.Description("Replacement platform IDs")),
	mcp.WithString("status", mcp.Description("Replacement lifecycle tag")),
	mcp.WithString("duration", mcp.Description("Replacement audio duration")),
	mcp.WithString("file_type", mcp.Description("Replacement document MIME type")),
)

var noteDeleteToolDef = mcp.NewTool("note_delete",
	mcp.WithDescription("Hard-delete a content piece."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Content piece ID")),
)

var dashboardViewToolDef = mcp.NewTool("dashboard_view",
	mcp.WithDescription("Filter content pieces by search text, brand, and the active filter mode (date, brand, or platform). Only the active mode's extra predicate applies. Defaults mirror the dashboard landing page: date mode, today."),
	mcp.WithString("query", mcp.Description("Case-insensitive substring over title and original content")),
	mcp.WithString("brand_id", mcp.Description("Brand ID or \"all\"")),
	mcp.WithString("mode", mcp.Description("Filter mode: date, brand, or platform (default date)")),
	mcp.WithString("date", mcp.Description("Calendar date YYYY-MM-DD for date mode (default today)")),
	mcp.WithString("platform", mcp.Description("Platform ID or \"all\" for platform mode")),
)

var contentGenerateToolDef = mcp.NewTool("content_generate",
	mcp.WithDescription("Draft platform-shaped variants of raw text in a brand's voice (simulated). Attach results to an existing piece with content_id, or save a new piece with save=true."),
	mcp.WithString("text", mcp.Description("Raw content to transform (required unless content_id is set)")),
	mcp.WithString("brand_id", mcp.Description("Brand voice; defaults to the current brand")),
	mcp.WithArray("platforms", mcp.Description("Target platform IDs (default from config)")),
	mcp.WithString("content_id", mcp.Description("Existing piece to attach results to")),
	mcp.WithBoolean("save", mcp.Description("Save results as a new piece")),
)
