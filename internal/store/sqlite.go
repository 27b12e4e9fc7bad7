package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ticklist/internal/domain"
	_ "modernc.org/sqlite"
)

var _ domain.Store = (*SQLiteStore)(nil)

// SQLiteStore backs the task list with an in-memory sqlite database. The
// database lives and dies with the process, so nothing survives a session.
// AUTOINCREMENT supplies the monotonic task ids.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore() (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A :memory: database exists per connection; keep exactly one.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// Close releases the underlying database, discarding all tasks.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) AddTask(text string) (*domain.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	var t domain.Task
	var completed int64
	if err := s.db.QueryRow(`
		INSERT INTO tasks (text)
		VALUES (?)
		RETURNING
			id,
			text,
			completed`,
		trimmed,
	).Scan(
		&t.ID,
		&t.Text,
		&completed,
	); err != nil {
		return nil, err
	}
	t.Completed = completed != 0
	return &t, nil
}

func (s *SQLiteStore) ToggleTask(id int64) (*domain.Task, error) {
	var t domain.Task
	var completed int64
	err := s.db.QueryRow(`
		UPDATE tasks
		SET completed = 1 - completed
		WHERE id = ?
		RETURNING
			id,
			text,
			completed`,
		id,
	).Scan(
		&t.ID,
		&t.Text,
		&completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Completed = completed != 0
	return &t, nil
}

func (s *SQLiteStore) DeleteTask(id int64) (*domain.Task, error) {
	var t domain.Task
	var completed int64
	err := s.db.QueryRow(`
		DELETE FROM tasks
		WHERE id = ?
		RETURNING
			id,
			text,
			completed`,
		id,
	).Scan(
		&t.ID,
		&t.Text,
		&completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Completed = completed != 0
	return &t, nil
}

func (s *SQLiteStore) ListTasks() ([]*domain.Task, error) {
	rows, err := s.db.Query(`
		SELECT
			id,
			text,
			completed
		FROM tasks
		ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		var completed int64
		if err := rows.Scan(
			&t.ID,
			&t.Text,
			&completed,
		); err != nil {
			return nil, err
		}
		t.Completed = completed != 0
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) Summarize() (domain.Summary, error) {
	var sum domain.Summary
	if err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(completed), 0)
		FROM tasks`,
	).Scan(
		&sum.Total,
		&sum.Completed,
	); err != nil {
		return domain.Summary{}, err
	}
	sum.Remaining = sum.Total - sum.Completed
	return sum, nil
}
