package store_test

import (
	"fmt"
	"testing"

	"ticklist/internal/domain"
	"ticklist/internal/store"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
)

// forEachBackend runs the same contract test against every Store
// implementation. Both backends must be indistinguishable at this level.
func forEachBackend(t *testing.T, fn func(t *testing.T, s domain.Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, store.NewMemoryStore())
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := store.NewSQLiteStore()
		require.NoError(t, err, "Setup: failed to open sqlite store")
		t.Cleanup(func() { s.Close() })
		fn(t, s)
	})
}

func mustAdd(t *testing.T, s domain.Store, text string) *domain.Task {
	t.Helper()
	task, err := s.AddTask(text)
	require.NoError(t, err)
	require.NotNil(t, task, "Setup: add of %q was unexpectedly ignored", text)
	return task
}

func TestStore_AddTask(t *testing.T) {
	testCases := []struct {
		name         string
		text         string
		expectIgnore bool
		expectText   string
	}{
		{name: "plain text", text: "buy milk", expectText: "buy milk"},
		{name: "trims surrounding whitespace", text: "  buy milk  ", expectText: "buy milk"},
		{name: "empty string ignored", text: "", expectIgnore: true},
		{name: "whitespace only ignored", text: "   ", expectIgnore: true},
		{name: "tabs and newlines ignored", text: "\t\n ", expectIgnore: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			forEachBackend(t, func(t *testing.T, s domain.Store) {
				task, err := s.AddTask(tc.text)
				require.NoError(t, err)

				tasks, err := s.ListTasks()
				require.NoError(t, err)

				if tc.expectIgnore {
					assert.Assert(t, task == nil)
					assert.Equal(t, 0, len(tasks))
					return
				}

				require.NotNil(t, task)
				assert.Equal(t, tc.expectText, task.Text)
				assert.Equal(t, false, task.Completed)
				require.Equal(t, 1, len(tasks))
				assert.Equal(t, task.ID, tasks[0].ID)
			})
		})
	}
}

func TestStore_AddTask_UniqueIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s domain.Store) {
		seen := make(map[int64]bool)
		for i := 0; i < 100; i++ {
			task := mustAdd(t, s, fmt.Sprintf("task %d", i))
			assert.Assert(t, !seen[task.ID], "id %d assigned twice", task.ID)
			seen[task.ID] = true
		}
	})
}

func TestStore_ToggleTask(t *testing.T) {
	t.Run("toggle flips exactly one task", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			a := mustAdd(t, s, "a")
			b := mustAdd(t, s, "b")

			toggled, err := s.ToggleTask(a.ID)
			require.NoError(t, err)
			require.NotNil(t, toggled)
			assert.Equal(t, true, toggled.Completed)

			tasks, err := s.ListTasks()
			require.NoError(t, err)
			require.Equal(t, 2, len(tasks))
			assert.Equal(t, true, tasks[0].Completed)
			assert.Equal(t, false, tasks[1].Completed)
			assert.Equal(t, b.ID, tasks[1].ID)
		})
	})

	t.Run("toggle twice restores original state", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			a := mustAdd(t, s, "a")
			mustAdd(t, s, "b")

			_, err := s.ToggleTask(a.ID)
			require.NoError(t, err)
			restored, err := s.ToggleTask(a.ID)
			require.NoError(t, err)
			require.NotNil(t, restored)
			assert.Equal(t, false, restored.Completed)

			tasks, err := s.ListTasks()
			require.NoError(t, err)
			for _, task := range tasks {
				assert.Equal(t, false, task.Completed)
			}
		})
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			mustAdd(t, s, "a")

			toggled, err := s.ToggleTask(9999)
			require.NoError(t, err)
			assert.Assert(t, toggled == nil)

			tasks, err := s.ListTasks()
			require.NoError(t, err)
			require.Equal(t, 1, len(tasks))
			assert.Equal(t, false, tasks[0].Completed)
		})
	})
}

func TestStore_DeleteTask(t *testing.T) {
	t.Run("removes exactly one and keeps order", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			a := mustAdd(t, s, "first")
			b := mustAdd(t, s, "second")
			c := mustAdd(t, s, "third")

			removed, err := s.DeleteTask(b.ID)
			require.NoError(t, err)
			require.NotNil(t, removed)
			assert.Equal(t, b.ID, removed.ID)
			assert.Equal(t, "second", removed.Text)

			tasks, err := s.ListTasks()
			require.NoError(t, err)
			require.Equal(t, 2, len(tasks))
			assert.Equal(t, a.ID, tasks[0].ID)
			assert.Equal(t, c.ID, tasks[1].ID)
		})
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			mustAdd(t, s, "only")

			removed, err := s.DeleteTask(9999)
			require.NoError(t, err)
			assert.Assert(t, removed == nil)

			tasks, err := s.ListTasks()
			require.NoError(t, err)
			assert.Equal(t, 1, len(tasks))
		})
	})

	t.Run("deleted ids are not reused", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			a := mustAdd(t, s, "a")
			_, err := s.DeleteTask(a.ID)
			require.NoError(t, err)

			b := mustAdd(t, s, "b")
			assert.Assert(t, b.ID != a.ID)
		})
	})
}

func TestStore_Summarize(t *testing.T) {
	t.Run("counts stay consistent through mutations", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			checkConsistent := func() domain.Summary {
				summary, err := s.Summarize()
				require.NoError(t, err)
				tasks, err := s.ListTasks()
				require.NoError(t, err)
				assert.Equal(t, len(tasks), summary.Total)
				assert.Equal(t, summary.Total, summary.Completed+summary.Remaining)
				return summary
			}

			checkConsistent()

			a := mustAdd(t, s, "a")
			b := mustAdd(t, s, "b")
			mustAdd(t, s, "c")
			checkConsistent()

			_, err := s.ToggleTask(a.ID)
			require.NoError(t, err)
			summary := checkConsistent()
			assert.Equal(t, 1, summary.Completed)

			_, err = s.DeleteTask(b.ID)
			require.NoError(t, err)
			summary = checkConsistent()
			assert.Equal(t, 2, summary.Total)
			assert.Equal(t, 1, summary.Completed)
			assert.Equal(t, 1, summary.Remaining)
		})
	})

	t.Run("end to end scenario", func(t *testing.T) {
		forEachBackend(t, func(t *testing.T, s domain.Store) {
			a := mustAdd(t, s, "a")
			b := mustAdd(t, s, "b")

			_, err := s.ToggleTask(a.ID)
			require.NoError(t, err)

			summary, err := s.Summarize()
			require.NoError(t, err)
			assert.Equal(t, domain.Summary{Total: 2, Completed: 1, Remaining: 1}, summary)

			_, err = s.DeleteTask(b.ID)
			require.NoError(t, err)

			tasks, err := s.ListTasks()
			require.NoError(t, err)
			require.Equal(t, 1, len(tasks))
			assert.Equal(t, "a", tasks[0].Text)
			assert.Equal(t, true, tasks[0].Completed)

			summary, err = s.Summarize()
			require.NoError(t, err)
			assert.Equal(t, domain.Summary{Total: 1, Completed: 1, Remaining: 0}, summary)
		})
	})
}

func TestSeed(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s domain.Store) {
		require.NoError(t, store.Seed(s))

		summary, err := s.Summarize()
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 1, summary.Completed)
		assert.Equal(t, 2, summary.Remaining)
	})
}
