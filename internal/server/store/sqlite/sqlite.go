package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"listkeeper/internal/server/store"
	"listkeeper/internal/shared/models"
)

// Table names come from deployment configuration, so they are interpolated
// into the DDL/DML. Restrict them to plain identifiers.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Store struct {
	db    *sql.DB
	todos string
	notes string
}

// New opens the database and ensures both tables exist. Listing is served
// by an index on user_id rather than a table scan.
func New(dsn, todosTable, notesTable string) (*Store, error) {
	for _, name := range []string{todosTable, notesTable} {
		if !identPattern.MatchString(name) {
			return nil, fmt.Errorf("invalid table name %q", name)
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			username TEXT NOT NULL,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_user_id ON %[1]s(user_id);
		CREATE TABLE IF NOT EXISTS %[2]s (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			username TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%[2]s_user_id ON %[2]s(user_id);
	`, todosTable, notesTable)
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &Store{db: db, todos: todosTable, notes: notesTable}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Todos

func (s *Store) GetTodo(ctx context.Context, id string) (models.Todo, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT id, user_id, username, title, completed, created_at FROM %s WHERE id = ?`, s.todos), id)
	var t models.Todo
	if err := row.Scan(&t.ID, &t.UserID, &t.Username, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, store.ErrNotFound
		}
		return models.Todo{}, err
	}
	return t, nil
}

func (s *Store) PutTodo(ctx context.Context, t models.Todo) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, user_id, username, title, completed, created_at)
		VALUES (?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			user_id=excluded.user_id,
			username=excluded.username,
			title=excluded.title,
			completed=excluded.completed,
			created_at=excluded.created_at
	`, s.todos), t.ID, t.UserID, t.Username, t.Title, t.Completed, t.CreatedAt)
	return err
}

func (s *Store) DeleteTodo(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, s.todos), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListTodosByOwner(ctx context.Context, userID string) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, user_id, username, title, completed, created_at FROM %s WHERE user_id = ?`, s.todos), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Username, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Notes

func (s *Store) GetNote(ctx context.Context, id string) (models.Note, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT id, user_id, username, content, created_at FROM %s WHERE id = ?`, s.notes), id)
	var n models.Note
	if err := row.Scan(&n.ID, &n.UserID, &n.Username, &n.Content, &n.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, store.ErrNotFound
		}
		return models.Note{}, err
	}
	return n, nil
}

func (s *Store) PutNote(ctx context.Context, n models.Note) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, user_id, username, content, created_at)
		VALUES (?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			user_id=excluded.user_id,
			username=excluded.username,
			content=excluded.content,
			created_at=excluded.created_at
	`, s.notes), n.ID, n.UserID, n.Username, n.Content, n.CreatedAt)
	return err
}

func (s *Store) DeleteNote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, s.notes), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListNotesByOwner(ctx context.Context, userID string) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, user_id, username, content, created_at FROM %s WHERE user_id = ?`, s.notes), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Username, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
