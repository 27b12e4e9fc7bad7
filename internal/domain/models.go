package domain

// Task is one to-do entry. Text is immutable after creation; only the
// Completed flag changes over a task's lifetime.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Summary holds the derived counts for the current task list.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}
