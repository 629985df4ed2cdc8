// Package export dumps the book store into a workbook with one sheet per
// record kind.
package export

import (
	"context"
	"fmt"

	"booksync/internal/sheet"
	"booksync/internal/usecase"

	"github.com/sirupsen/logrus"
)

// Sheet names of the export workbook.
const (
	SheetBooks        = "Books"
	SheetAuthors      = "Authors"
	SheetBooksAuthors = "BooksAuthors"
)

var (
	BookHeaders       = []string{"ID", "Title", "ISBN", "Cover"}
	AuthorHeaders     = []string{"ID", "Name"}
	BookAuthorHeaders = []string{"ID", "BookID", "AuthorID", "Num"}
)

// Sink receives finished sheets. *sheet.Writer is the workbook sink.
type Sink interface {
	AddSheet(name string, headers []string, rows [][]any) error
}

var _ Sink = (*sheet.Writer)(nil)

// Exporter writes Books, Authors and BooksAuthors sheets. Rows keep the order
// the store lists them in; no sorting is applied.
type Exporter struct {
	store usecase.Store
	log   logrus.FieldLogger
}

func NewExporter(store usecase.Store, log logrus.FieldLogger) *Exporter {
	return &Exporter{store: store, log: log}
}

func (e *Exporter) Export(ctx context.Context, sink Sink) error {
	passes := []struct {
		name    string
		headers []string
		rows    func(context.Context) ([][]any, error)
	}{
		{SheetBooks, BookHeaders, e.bookRows},
		{SheetAuthors, AuthorHeaders, e.authorRows},
		{SheetBooksAuthors, BookAuthorHeaders, e.bookAuthorRows},
	}

	for _, p := range passes {
		rows, err := p.rows(ctx)
		if err != nil {
			return fmt.Errorf("export %s: %w", p.name, err)
		}
		if err := sink.AddSheet(p.name, p.headers, rows); err != nil {
			return fmt.Errorf("export %s: %w", p.name, err)
		}
		e.log.WithFields(logrus.Fields{"sheet": p.name, "rows": len(rows)}).Info("sheet exported")
	}
	return nil
}

func (e *Exporter) bookRows(ctx context.Context) ([][]any, error) {
	books, err := e.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(books))
	for _, b := range books {
		// Cover is not carried by imports and is always exported empty.
		rows = append(rows, []any{b.ID, b.Title, sheet.FormatISBN(b.ISBN), ""})
	}
	return rows, nil
}

func (e *Exporter) authorRows(ctx context.Context) ([][]any, error) {
	authors, err := e.store.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, []any{a.ID, a.Name})
	}
	return rows, nil
}

func (e *Exporter) bookAuthorRows(ctx context.Context) ([][]any, error) {
	links, err := e.store.ListBookAuthors(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, []any{l.ID, l.BookID, l.AuthorID, l.Num})
	}
	return rows, nil
}
