package web

import (
	"io"

	"ticklist/internal/domain"
)

type PageView struct {
	Tasks   []TaskView
	Summary SummaryView
	Version string
}

// NewPageView assembles the full-page view model from current store state
func NewPageView(tasks []*domain.Task, summary domain.Summary, version string) PageView {
	view := PageView{
		Summary: NewSummaryView(summary, false),
		Version: version,
	}
	if len(tasks) > 0 {
		view.Tasks = make([]TaskView, len(tasks))
		for i, t := range tasks {
			view.Tasks[i] = NewTaskView(t, false)
		}
	}
	return view
}

func (p *Presentation) RenderIndex(w io.Writer, view PageView) error {
	return p.tmpl.ExecuteTemplate(w, "layout.html", view)
}
