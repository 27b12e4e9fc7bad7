package web

// DeleteButtonView holds data for the delete button template fragment
type DeleteButtonView struct {
	URL            string // e.g., "/tasks/42"
	ConfirmMessage string // e.g., "Delete this task?"
	ButtonText     string // e.g., "Delete"
}
