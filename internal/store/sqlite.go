package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/adanyl0v/checklist/internal/models"
)

// sqliteTimeLayout has a fixed width so that stored timestamps sort
// lexically in time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens the database file at path. ":memory:" opens a private
// in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path != ":memory:" {
		dsn += "&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// A single connection keeps an in-memory database alive and serializes
	// writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	return NewSQLite(db), nil
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db, now: time.Now}
}

func (s *SQLite) DB() *sql.DB {
	return s.db
}

// sqliteTaskRow mirrors taskRow with timestamps kept as stored text.
type sqliteTaskRow struct {
	ID             string `db:"id"`
	SubjectID      string `db:"subject_id"`
	Title          string `db:"title"`
	Category       string `db:"category"`
	Description    string `db:"description"`
	Status         string `db:"status"`
	IsPersonalized bool   `db:"is_personalized"`
	IsCustom       bool   `db:"is_custom"`
	GenerationID   string `db:"generation_id"`
	Position       int    `db:"position"`
	CreatedBy      string `db:"created_by"`
	CreatedAt      string `db:"created_at"`
	UpdatedAt      string `db:"updated_at"`
}

func (r *sqliteTaskRow) toTask() (*models.Task, error) {
	createdAt, err := time.Parse(sqliteTimeLayout, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(sqliteTimeLayout, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	row := taskRow{
		ID:             r.ID,
		SubjectID:      r.SubjectID,
		Title:          r.Title,
		Category:       r.Category,
		Description:    r.Description,
		Status:         r.Status,
		IsPersonalized: r.IsPersonalized,
		IsCustom:       r.IsCustom,
		GenerationID:   r.GenerationID,
		Position:       r.Position,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	return row.toTask(), nil
}

func (s *SQLite) List(ctx context.Context, filter Filter) ([]*models.Task, error) {
	query, args, err := selectTasks(filter, squirrel.Question).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var rows []*sqliteTaskRow
	if err = sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("selecting tasks: %w", err)
	}

	tasks := make([]*models.Task, 0, len(rows))
	for _, r := range rows {
		task, err := r.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *SQLite) Get(ctx context.Context, subjectID, id string) (*models.Task, error) {
	query, args, err := selectTasks(Filter{ID: id, SubjectID: subjectID}, squirrel.Question).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var row sqliteTaskRow
	if err = sqlscan.Get(ctx, s.db, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("selecting task: %w", err)
	}
	return row.toTask()
}

type sqlExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLite) Insert(ctx context.Context, tasks []*models.Task) error {
	return s.insert(ctx, s.db, tasks)
}

func (s *SQLite) insert(ctx context.Context, db sqlExecer, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := prepareTasks(tasks, s.now().UTC()); err != nil {
		return err
	}

	query, args, err := insertTasks(tasks, squirrel.Question, sqliteValues).ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}
	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting tasks: %w", mapSQLiteError(err))
	}
	return nil
}

func (s *SQLite) Update(ctx context.Context, subjectID, id string, fields UpdateFields) (*models.Task, error) {
	if err := validateUpdate(fields); err != nil {
		return nil, err
	}

	now := s.now().UTC().Format(sqliteTimeLayout)
	query, args, err := updateTask(subjectID, id, fields, now, squirrel.Question).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", mapSQLiteError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrTaskNotFound
	}
	return s.Get(ctx, subjectID, id)
}

func (s *SQLite) Delete(ctx context.Context, filter Filter) (int64, error) {
	return s.delete(ctx, s.db, filter)
}

func (s *SQLite) delete(ctx context.Context, db sqlExecer, filter Filter) (int64, error) {
	builder, err := deleteTasks(filter, squirrel.Question)
	if err != nil {
		return 0, err
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete query: %w", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting tasks: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLite) ReplacePersonalized(ctx context.Context, subjectID string, tasks []*models.Task) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleted, err := s.delete(ctx, tx, Filter{SubjectID: subjectID, Personalized: Bool(true)})
	if err != nil {
		return 0, err
	}
	if err = s.insert(ctx, tx, tasks); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return deleted, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func sqliteValues(t *models.Task) []any {
	return []any{
		t.ID,
		t.SubjectID,
		t.Title,
		t.Category.String(),
		t.Description,
		string(t.Status),
		t.IsPersonalized,
		t.IsCustom,
		t.GenerationID,
		t.Position,
		t.CreatedBy,
		t.CreatedAt.UTC().Format(sqliteTimeLayout),
		t.UpdatedAt.UTC().Format(sqliteTimeLayout),
	}
}

func mapSQLiteError(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	code := sqliteErr.Code()
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %s", ErrDuplicateTitle, sqliteErr.Error())
	case code == sqlite3.SQLITE_CONSTRAINT_CHECK, code == sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return fmt.Errorf("%w: %s", ErrInvalidTask, sqliteErr.Error())
	case code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE"):
		return fmt.Errorf("%w: %s", ErrDuplicateTitle, sqliteErr.Error())
	default:
		return err
	}
}
