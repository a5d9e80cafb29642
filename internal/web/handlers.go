package web

import (
	"net/http"

	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/config"
	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/dashboard"
	"github.com/ewaldman/brandloom/internal/ops"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	stores   ops.Stores
	cfg      *config.Config
	renderer *Renderer
}

// dashboardPage is the payload for the dashboard template: the filter
// state echoed back into the form plus the filtered pieces.
type dashboardPage struct {
	Query     string
	BrandID   string
	Mode      string
	Date      string
	Platform  string
	Items     []ops.DashboardItem
	Total     int
	Brands    []brand.Brand
	Platforms []content.Platform
}

// HandleDashboard renders the filtered content dashboard.
// GET /notes?q=&brand=&mode=&date=&platform=
func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := ops.DashboardInput{
		Query:    q.Get("q"),
		BrandID:  q.Get("brand"),
		Mode:     dashboard.Mode(q.Get("mode")),
		Date:     q.Get("date"),
		Platform: q.Get("platform"),
	}

	out, err := ops.DashboardView(h.stores, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	brands, err := ops.BrandList(h.stores, ops.BrandListInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	mode := string(input.Mode)
	if mode == "" {
		mode = string(dashboard.ModeDate)
	}

	page := dashboardPage{
		Query:     input.Query,
		BrandID:   input.BrandID,
		Mode:      mode,
		Date:      input.Date,
		Platform:  input.Platform,
		Items:     out.Items,
		Total:     out.Total,
		Brands:    brands.Items,
		Platforms: content.Platforms,
	}
	h.renderer.renderPage(w, "dashboard.html", "Dashboard", "notes", page)
}

// notePage is the payload for the note detail template.
type notePage struct {
	Piece     content.Piece
	BrandName string
}

// HandleNoteDetail renders one content piece.
// GET /notes/{id}
func (h *Handlers) HandleNoteDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	out, err := ops.NoteFetch(h.stores, ops.NoteFetchInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	page := notePage{Piece: out.Piece}
	if b, ok := h.stores.Brands.GetByID(out.Piece.BrandID); ok {
		page.BrandName = b.Name
	}
	h.renderer.renderPage(w, "note.html", out.Piece.Title, "notes", page)
}

// HandleNoteDelete removes a content piece.
// DELETE /notes/{id}
func (h *Handlers) HandleNoteDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := ops.NoteDelete(h.stores, ops.NoteDeleteInput{ID: id}); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// brandsPage is the payload for the brands template.
type brandsPage struct {
	Items     []brand.Brand
	CurrentID string
}

// HandleBrands renders every brand with the current selection marked.
// GET /brands
func (h *Handlers) HandleBrands(w http.ResponseWriter, r *http.Request) {
	out, err := ops.BrandList(h.stores, ops.BrandListInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	page := brandsPage{Items: out.Items, CurrentID: out.CurrentID}
	h.renderer.renderPage(w, "brands.html", "Brands", "brands", page)
}
