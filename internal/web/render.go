package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	apperrors "github.com/ewaldman/brandloom/internal/errors"
)

// Renderer holds parsed templates and shared render state.
type Renderer struct {
	pages   map[string]*template.Template
	version string
}

// PageData is the payload every page template receives.
type PageData struct {
	Title   string
	Version string
	Nav     string
	Data    any
}

// NewRenderer parses the embedded templates. Each page template is
// parsed against a clone of the layout so pages can override blocks
// independently.
func NewRenderer(templates fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 3:04 PM")
		},
		"relativeDay": func(t time.Time) string {
			return relativeDay(t, time.Now())
		},
		"markdown": renderMarkdown,
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"lower": strings.ToLower,
	}

	layout, err := template.New("layout.html").Funcs(funcMap).ParseFS(templates, "layout.html")
	if err != nil {
		log.Fatalf("failed to parse layout template: %v", err)
	}

	pageNames := []string{"dashboard.html", "note.html", "brands.html", "error.html"}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := layout.Clone()
		if err != nil {
			log.Fatalf("failed to clone layout for %s: %v", name, err)
		}
		page, err := clone.ParseFS(templates, name)
		if err != nil {
			log.Fatalf("failed to parse %s: %v", name, err)
		}
		pages[name] = page
	}

	return &Renderer{pages: pages, version: version}
}

// renderMarkdown converts note text to HTML. Goldmark escapes raw
// HTML in the source by default, so untrusted note content stays
// inert.
func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

// relativeDay mirrors the dashboard grouping labels: Today,
// Yesterday, then a short date.
func relativeDay(t, now time.Time) string {
	day := t.Format("2006-01-02")
	switch day {
	case now.Format("2006-01-02"):
		return "Today"
	case now.AddDate(0, 0, -1).Format("2006-01-02"):
		return "Yesterday"
	default:
		return t.Format("Jan 2")
	}
}

// renderPage renders a full page through the layout.
func (r *Renderer) renderPage(w http.ResponseWriter, name, title, nav string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, title, nav, data)
}

func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name, title, nav string, data any) {
	page, ok := r.pages[name]
	if !ok {
		log.Printf("render: unknown page %q", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pd := PageData{
		Title:   title,
		Version: r.version,
		Nav:     nav,
		Data:    data,
	}

	// Render to a buffer first so a template failure does not leave a
	// half-written response.
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout.html", pd); err != nil {
		log.Printf("render: execute %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderError writes an error response. JSON clients get a structured
// payload; everyone else gets the error page.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "something went wrong"
	code := string(apperrors.ErrInternal)

	var appErr *apperrors.Error
	if e, ok := err.(*apperrors.Error); ok {
		appErr = e
		status = e.Status
		message = e.Message
		code = string(e.Code)
	}

	if wantsJSON(req) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		payload := map[string]any{
			"error":   code,
			"message": message,
		}
		if appErr != nil && len(appErr.Details) > 0 && appErr.Code != apperrors.ErrInternal {
			payload["details"] = appErr.Details
		}
		_ = json.NewEncoder(w).Encode(payload)
		return
	}

	r.renderPageStatus(w, status, "error.html", "Error", "", map[string]any{
		"Status":  status,
		"Message": message,
	})
}

func wantsJSON(req *http.Request) bool {
	accept := req.Header.Get("Accept")
	return strings.Contains(accept, "application/json")
}
