package web

import (
	"fmt"
	"io"

	"ticklist/internal/domain"
)

// TaskView is the view model for Task
type TaskView struct {
	ID           int64
	Text         string
	Completed    bool
	OOB          bool
	DeleteButton DeleteButtonView
}

// NewTaskView creates a TaskView from a domain Task
func NewTaskView(t *domain.Task, oob bool) TaskView {
	return TaskView{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		OOB:       oob,
		DeleteButton: DeleteButtonView{
			URL:            fmt.Sprintf("/tasks/%d", t.ID),
			ConfirmMessage: "Delete this task?",
			ButtonText:     "Delete",
		},
	}
}

// RenderTask renders a single task list item from its view model
func (p *Presentation) RenderTask(w io.Writer, view TaskView) error {
	return p.tmpl.ExecuteTemplate(w, "task.html", view)
}
