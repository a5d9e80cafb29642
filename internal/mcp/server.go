package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ewaldman/brandloom/internal/config"
	"github.com/ewaldman/brandloom/internal/generate"
	"github.com/ewaldman/brandloom/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"brand_create": {
		def:     brandCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBrandCreate },
	},
	"brand_fetch": {
		def:     brandFetchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBrandFetch },
	},
	"brand_list": {
		def:     brandListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBrandList },
	},
	"brand_update": {
		def:     brandUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBrandUpdate },
	},
	"brand_delete": {
		def:     brandDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBrandDelete },
	},
	"brand_use": {
		def:     brandUseToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBrandUse },
	},
	"brand_export": {
		def:     brandExportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBrandExport },
	},
	"note_capture": {
		def:     noteCaptureToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteCapture },
	},
	"note_fetch": {
		def:     noteFetchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteFetch },
	},
	"note_list": {
		def:     noteListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteList },
	},
	"note_update": {
		def:     noteUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteUpdate },
	},
	"note_delete": {
		def:     noteDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteDelete },
	},
	"dashboard_view": {
		def:     dashboardViewToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDashboardView },
	},
	"content_generate": {
		def:     contentGenerateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleContentGenerate },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with brandloom tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(st ops.Stores, cfg *config.Config, baseDir, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"brandloom",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(st, cfg, baseDir)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(st ops.Stores, cfg *config.Config, baseDir, version string) error {
	s := NewServer(st, cfg, baseDir, version)
	return server.ServeStdio(s)
}

// newGenerator builds the generator the content_generate tool uses.
func newGenerator(cfg *config.Config) *generate.Generator {
	return generate.New(cfg)
}
