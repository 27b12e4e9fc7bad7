package store

import (
	"strings"
	"sync"

	"ticklist/internal/domain"
)

// Compile-time check that MemoryStore satisfies the domain contract.
var _ domain.Store = (*MemoryStore)(nil)

// MemoryStore keeps the task list in a slice guarded by an RWMutex. The
// mutex is there because net/http serves each connection on its own
// goroutine; the store itself needs no transactions or cancellation.
type MemoryStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: []*domain.Task{},
	}
}

func (s *MemoryStore) AddTask(text string) (*domain.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task := &domain.Task{
		ID:   s.nextID,
		Text: trimmed,
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

func (s *MemoryStore) ToggleTask(id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
			return t, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) DeleteTask(id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			removed := t
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return removed, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) ListTasks() ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy the slice header so a concurrent append can't surprise the
	// caller. The Task pointers themselves are shared.
	out := make([]*domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *MemoryStore) Summarize() (domain.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := domain.Summary{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			sum.Completed++
		}
	}
	sum.Remaining = sum.Total - sum.Completed
	return sum, nil
}

// Seed preloads a few sample tasks for demos. It works against any backend.
func Seed(s domain.Store) error {
	texts := []string{"Buy groceries", "Write trip report", "Water the plants"}
	var second *domain.Task
	for i, text := range texts {
		t, err := s.AddTask(text)
		if err != nil {
			return err
		}
		if i == 1 {
			second = t
		}
	}
	if second != nil {
		if _, err := s.ToggleTask(second.ID); err != nil {
			return err
		}
	}
	return nil
}
