package saved

import (
	"context"
	"fmt"
	"time"

	"paperapi/internal/paper"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo stores saved papers in the saved_papers table. The seq column
// preserves insertion order.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context) ([]paper.Paper, error) {
	const listSQL = `
		SELECT id, title, authors, year, citations
		FROM saved_papers
		ORDER BY seq ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("query saved papers: %w", err)
	}
	defer rows.Close()

	papers := []paper.Paper{}
	for rows.Next() {
		var p paper.Paper
		if err := rows.Scan(&p.ID, &p.Title, &p.Authors, &p.Year, &p.Citations); err != nil {
			return nil, fmt.Errorf("scan saved paper: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

func (r *PostgresRepo) Add(ctx context.Context, p paper.Paper) (bool, error) {
	const insertSQL = `
		INSERT INTO saved_papers (id, title, authors, year, citations, saved_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO NOTHING
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, insertSQL, p.ID, p.Title, p.Authors, p.Year, p.Citations)
	if err != nil {
		return false, fmt.Errorf("insert saved paper: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *PostgresRepo) Remove(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, `DELETE FROM saved_papers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete saved paper: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return paper.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}
