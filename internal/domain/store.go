package domain

// Store is an ordered collection of tasks. Insertion order is preserved:
// AddTask appends, DeleteTask removes without reordering the rest, and no
// operation moves a task.
//
// Invalid input is not an error. AddTask with whitespace-only text and
// ToggleTask/DeleteTask with an unknown id return (nil, nil) and mutate
// nothing. The error return carries backend failure only; the in-memory
// implementation never produces one.
type Store interface {
	AddTask(text string) (*Task, error)
	ToggleTask(id int64) (*Task, error)
	DeleteTask(id int64) (*Task, error)
	ListTasks() ([]*Task, error)
	Summarize() (Summary, error)
}
