// Package reconcile applies parsed import rows to the book store.
//
// Each record passes through Parse, ResolveBook, ResolveAuthors and
// LinkAssociations in that order. A record that fails at any step is
// abandoned and reported; the run moves on to the next record. Every write is
// its own transaction, so work committed before a failure is kept.
package reconcile

import (
	"context"
	"time"

	"booksync/internal/sheet"
	"booksync/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Reconciler struct {
	parser  *sheet.Parser
	books   *BookResolver
	authors *AuthorDeduplicator
	links   *AssociationBuilder
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewReconciler(store usecase.Store, log logrus.FieldLogger) *Reconciler {
	return &Reconciler{
		parser:  sheet.NewParser(),
		books:   NewBookResolver(store),
		authors: NewAuthorDeduplicator(store, log),
		links:   NewAssociationBuilder(store),
		log:     log,
		now:     time.Now,
	}
}

// Import processes the records of table in sheet order. It only returns an
// error when the run itself cannot go on: the header lacks a required column
// or ctx is done. Record failures are collected in the report.
func (r *Reconciler) Import(ctx context.Context, table *sheet.Table) (*Report, error) {
	cols, err := table.Columns()
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: r.now(),
	}
	log := r.log.WithField("run_id", report.RunID)
	log.WithField("rows", len(table.Rows)).Info("import started")

	for i, raw := range table.Rows {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = r.now()
			return report, err
		}

		line := sheet.SheetRow(i)
		if sheet.IsBlank(raw) {
			report.RowsSkipped++
			continue
		}
		report.RowsSeen++

		if err := r.importRow(ctx, log.WithField("row", line), cols, raw, report); err != nil {
			report.Failures = append(report.Failures, RowFailure{Row: line, Err: err})
			log.WithField("row", line).WithError(err).Warn("row abandoned")
			continue
		}
		report.RowsImported++
	}

	report.FinishedAt = r.now()
	log.WithFields(logrus.Fields{
		"imported":     report.RowsImported,
		"failed":       report.RowsFailed(),
		"skipped":      report.RowsSkipped,
		"authors":      report.AuthorsCreated,
		"associations": report.AssociationsCreated,
	}).Info("import finished")
	return report, nil
}

func (r *Reconciler) importRow(ctx context.Context, log logrus.FieldLogger, cols sheet.Columns, raw []string, report *Report) error {
	row, err := r.parser.Parse(cols, raw)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"isbn": row.ISBN.String(), "title": row.Title}).Debug("found a book")

	book, err := r.books.Resolve(ctx, row.ISBN, row.Title)
	if err != nil {
		return err
	}

	authors, created, err := r.authors.ResolveAll(ctx, row.Authors)
	report.AuthorsCreated += created
	if err != nil {
		return err
	}

	links, err := r.links.Link(ctx, book, authors)
	report.AssociationsCreated += len(links)
	return err
}
