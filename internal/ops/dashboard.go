package ops

import (
	"time"

	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/dashboard"
)

// DashboardInput contains the filter criteria for the dashboard view.
// Zero values mirror the landing page: date mode, today, all brands,
// all platforms, no search.
type DashboardInput struct {
	Query    string
	BrandID  string
	Mode     dashboard.Mode
	Date     string // DateLayout; defaults to today in date mode
	Platform string
}

// DashboardItem is a piece decorated for display.
type DashboardItem struct {
	content.Piece
	BrandName string `json:"brand_name,omitempty"`
	Day       string `json:"day"` // "Today", "Yesterday", or "Jan 2"
}

// DashboardOutput contains the result of the DashboardView operation.
type DashboardOutput struct {
	Items []DashboardItem `json:"items"`
	Total int             `json:"total"` // collection size before filtering
}

// DashboardView recomputes the visible subset of content pieces from
// the criteria. Stateless: re-run on every input change.
func DashboardView(st Stores, input DashboardInput) (*DashboardOutput, error) {
	now := time.Now()

	criteria := dashboard.Criteria{
		Query:    input.Query,
		BrandID:  input.BrandID,
		Mode:     input.Mode,
		Date:     input.Date,
		Platform: input.Platform,
	}
	if criteria.Mode == "" {
		criteria.Mode = dashboard.ModeDate
	}
	if criteria.Mode == dashboard.ModeDate && criteria.Date == "" {
		criteria.Date = dashboard.Day(now)
	}

	all := st.Content.All()
	filtered := dashboard.Filter(all, criteria)

	items := make([]DashboardItem, 0, len(filtered))
	for _, p := range filtered {
		item := DashboardItem{
			Piece: p,
			Day:   dashboard.RelativeDay(p.CreatedAt, now),
		}
		// Dangling brand references simply render without a badge.
		if b, ok := st.Brands.GetByID(p.BrandID); ok {
			item.BrandName = b.Name
		}
		items = append(items, item)
	}

	return &DashboardOutput{Items: items, Total: len(all)}, nil
}
