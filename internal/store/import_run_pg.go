package store

import (
	"context"
	"fmt"

	"booksync/internal/entity"
	"booksync/internal/usecase"

	"github.com/google/uuid"
)

var _ usecase.RunLog = (*PG)(nil)

func (r *PG) RecordRun(ctx context.Context, run entity.ImportRun) error {
	id, err := uuid.Parse(run.ID)
	if err != nil {
		return fmt.Errorf("run id %q: %w", run.ID, err)
	}

	const sql = `
		INSERT INTO import_runs (
			id, input, started_at, finished_at,
			rows_seen, rows_imported, rows_failed, rows_skipped,
			authors_created, associations_created
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.Exec(ctx, sql,
		id, run.Input, run.StartedAt, run.FinishedAt,
		run.RowsSeen, run.RowsImported, run.RowsFailed, run.RowsSkipped,
		run.AuthorsCreated, run.AssociationsCreated,
	)
	return err
}

// ListRuns returns the run history, newest first.
func (r *PG) ListRuns(ctx context.Context) ([]entity.ImportRun, error) {
	const sql = `
		SELECT id, input, started_at, finished_at,
			rows_seen, rows_imported, rows_failed, rows_skipped,
			authors_created, associations_created
		FROM import_runs
		ORDER BY started_at DESC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []entity.ImportRun
	for rows.Next() {
		var (
			run entity.ImportRun
			id  uuid.UUID
		)
		if err := rows.Scan(&id, &run.Input, &run.StartedAt, &run.FinishedAt,
			&run.RowsSeen, &run.RowsImported, &run.RowsFailed, &run.RowsSkipped,
			&run.AuthorsCreated, &run.AssociationsCreated); err != nil {
			return nil, err
		}
		run.ID = id.String()
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
