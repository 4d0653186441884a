package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adanyl0v/checklist/internal/models"
)

// DB is the subset of pgxpool.Pool the store depends on. pgxmock pools
// satisfy it too.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Postgres struct {
	db  DB
	now func() time.Time
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db, now: time.Now}
}

func (p *Postgres) List(ctx context.Context, filter Filter) ([]*models.Task, error) {
	query, args, err := selectTasks(filter, squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var rows []*taskRow
	if err = pgxscan.Select(ctx, p.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("selecting tasks: %w", err)
	}
	return toTasks(rows), nil
}

func (p *Postgres) Get(ctx context.Context, subjectID, id string) (*models.Task, error) {
	query, args, err := selectTasks(Filter{ID: id, SubjectID: subjectID}, squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var row taskRow
	if err = pgxscan.Get(ctx, p.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("selecting task: %w", err)
	}
	return row.toTask(), nil
}

func (p *Postgres) Insert(ctx context.Context, tasks []*models.Task) error {
	return p.insert(ctx, p.db, tasks)
}

func (p *Postgres) insert(ctx context.Context, db DB, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := prepareTasks(tasks, p.now().UTC()); err != nil {
		return err
	}

	query, args, err := insertTasks(tasks, squirrel.Dollar, postgresValues).ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}
	if _, err = db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting tasks: %w", mapPgError(err))
	}
	return nil
}

func (p *Postgres) Update(ctx context.Context, subjectID, id string, fields UpdateFields) (*models.Task, error) {
	if err := validateUpdate(fields); err != nil {
		return nil, err
	}

	query, args, err := updateTask(subjectID, id, fields, p.now().UTC(), squirrel.Dollar).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	var row taskRow
	if err = pgxscan.Get(ctx, p.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task: %w", mapPgError(err))
	}
	return row.toTask(), nil
}

func (p *Postgres) Delete(ctx context.Context, filter Filter) (int64, error) {
	return p.delete(ctx, p.db, filter)
}

func (p *Postgres) delete(ctx context.Context, db DB, filter Filter) (int64, error) {
	builder, err := deleteTasks(filter, squirrel.Dollar)
	if err != nil {
		return 0, err
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting tasks: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ReplacePersonalized deletes the personalized tasks of a subject and
// inserts tasks in one transaction. A transaction-scoped advisory lock on
// the subject serializes concurrent replacements.
func (p *Postgres) ReplacePersonalized(ctx context.Context, subjectID string, tasks []*models.Task) (int64, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const lockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`
	if _, err = tx.Exec(ctx, lockQuery, subjectID); err != nil {
		return 0, fmt.Errorf("locking subject: %w", err)
	}

	deleted, err := p.delete(ctx, tx, Filter{SubjectID: subjectID, Personalized: Bool(true)})
	if err != nil {
		return 0, err
	}
	if err = p.insert(ctx, tx, tasks); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return deleted, nil
}

// Close is a no-op: the pool is owned by the caller.
func (p *Postgres) Close() error {
	return nil
}

func postgresValues(t *models.Task) []any {
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
		t.CreatedAt,
		t.UpdatedAt,
	}
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicateTitle, pgErr.ConstraintName)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", ErrInvalidTask, pgErr.Message)
	default:
		return err
	}
}
