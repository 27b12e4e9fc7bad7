package web

import (
	"io"

	"ticklist/internal/domain"
)

// SummaryView is the view model for the task counts bar
type SummaryView struct {
	Total     int
	Completed int
	Remaining int
	OOB       bool
}

// NewSummaryView creates a SummaryView from a domain Summary
func NewSummaryView(s domain.Summary, oob bool) SummaryView {
	return SummaryView{
		Total:     s.Total,
		Completed: s.Completed,
		Remaining: s.Remaining,
		OOB:       oob,
	}
}

// RenderSummary renders the counts bar from its view model
func (p *Presentation) RenderSummary(w io.Writer, view SummaryView) error {
	return p.tmpl.ExecuteTemplate(w, "summary.html", view)
}
