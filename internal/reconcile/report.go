package reconcile

import (
	"time"

	"booksync/internal/entity"
)

// Report summarises one import run.
type Report struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time

	RowsSeen     int // non-blank records
	RowsImported int
	RowsSkipped  int // blank records

	AuthorsCreated      int
	AssociationsCreated int

	Failures []RowFailure
}

// RowFailure is a record that was abandoned. Row is the sheet row number,
// counting the header as row 1.
type RowFailure struct {
	Row int
	Err error
}

func (r *Report) RowsFailed() int {
	return len(r.Failures)
}

// Run converts the report into the record kept by a usecase.RunLog.
func (r *Report) Run(input string) entity.ImportRun {
	return entity.ImportRun{
		ID:                  r.RunID,
		Input:               input,
		StartedAt:           r.StartedAt,
		FinishedAt:          r.FinishedAt,
		RowsSeen:            r.RowsSeen,
		RowsImported:        r.RowsImported,
		RowsFailed:          r.RowsFailed(),
		RowsSkipped:         r.RowsSkipped,
		AuthorsCreated:      r.AuthorsCreated,
		AssociationsCreated: r.AssociationsCreated,
	}
}
