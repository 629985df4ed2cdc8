package usecase

import (
	"context"

	"booksync/internal/entity"

	"github.com/shopspring/decimal"
)

// Tx is the set of record operations available inside one transaction.
type Tx interface {
	// Find Books by ISBN. More than one match is possible.
	FindBooksByISBN(ctx context.Context, isbn decimal.Decimal) ([]entity.Book, error)
	UpdateBookTitle(ctx context.Context, bookID int64, title string) error

	// Find Authors whose name equals name exactly
	FindAuthorsByName(ctx context.Context, name string) ([]entity.Author, error)
	// CreateAuthor stores a new author and fills in its ID
	CreateAuthor(ctx context.Context, author *entity.Author) error

	// CreateBookAuthor stores a new association and fills in its ID
	CreateBookAuthor(ctx context.Context, link *entity.BookAuthor) error
}

// Store is the transactional record store behind an import.
type Store interface {
	// InTx runs fn in a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// Listings come back in the store's own order.
	ListBooks(ctx context.Context) ([]entity.Book, error)
	ListAuthors(ctx context.Context) ([]entity.Author, error)
	ListBookAuthors(ctx context.Context) ([]entity.BookAuthor, error)
}

// RunLog keeps the history of import runs.
type RunLog interface {
	RecordRun(ctx context.Context, run entity.ImportRun) error
	ListRuns(ctx context.Context) ([]entity.ImportRun, error)
}
