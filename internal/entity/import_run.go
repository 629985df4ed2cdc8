package entity

import "time"

// ImportRun is the audit record kept for every workbook import.
type ImportRun struct {
	ID                  string    `json:"id"`
	Input               string    `json:"input"`
	StartedAt           time.Time `json:"started_at"`
	FinishedAt          time.Time `json:"finished_at"`
	RowsSeen            int       `json:"rows_seen"`
	RowsImported        int       `json:"rows_imported"`
	RowsFailed          int       `json:"rows_failed"`
	RowsSkipped         int       `json:"rows_skipped"`
	AuthorsCreated      int       `json:"authors_created"`
	AssociationsCreated int       `json:"associations_created"`
}
