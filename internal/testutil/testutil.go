// Package testutil holds an in-memory record store and fixtures shared by
// package tests.
package testutil

import (
	"context"
	"slices"
	"sync"

	"booksync/internal/entity"
	"booksync/internal/usecase"

	"github.com/shopspring/decimal"
)

// Operation names accepted by MemoryStore.FailOn.
const (
	OpFindBooksByISBN   = "FindBooksByISBN"
	OpUpdateBookTitle   = "UpdateBookTitle"
	OpFindAuthorsByName = "FindAuthorsByName"
	OpCreateAuthor      = "CreateAuthor"
	OpCreateBookAuthor  = "CreateBookAuthor"
)

// MemoryStore is a usecase.Store kept in slices. Listings return records in
// insertion order. A transaction works on a copy that replaces the state on
// commit, so a failed transaction leaves no trace.
type MemoryStore struct {
	mu      sync.Mutex
	books   []entity.Book
	authors []entity.Author
	links   []entity.BookAuthor
	runs    []entity.ImportRun
	lastID  int64

	// FailOn makes the named Tx operation return the error.
	FailOn map[string]error
	// Commits counts committed transactions.
	Commits int
	// RunLogErr makes RecordRun fail.
	RunLogErr error
}

var (
	_ usecase.Store  = (*MemoryStore)(nil)
	_ usecase.RunLog = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{FailOn: map[string]error{}}
}

// AddBook stores a book the way an outside process would before an import.
func (s *MemoryStore) AddBook(isbn int64, title string) entity.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	b := entity.Book{ID: s.lastID, ISBN: decimal.NewFromInt(isbn), Title: title}
	s.books = append(s.books, b)
	return b
}

func (s *MemoryStore) Book(id int64) (entity.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Book{}, false
}

func (s *MemoryStore) InTx(ctx context.Context, fn func(tx usecase.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{
		books:   slices.Clone(s.books),
		authors: slices.Clone(s.authors),
		links:   slices.Clone(s.links),
		lastID:  s.lastID,
		failOn:  s.FailOn,
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.books, s.authors, s.links, s.lastID = tx.books, tx.authors, tx.links, tx.lastID
	s.Commits++
	return nil
}

func (s *MemoryStore) ListBooks(ctx context.Context) ([]entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.books), nil
}

func (s *MemoryStore) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.authors), nil
}

func (s *MemoryStore) ListBookAuthors(ctx context.Context) ([]entity.BookAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.links), nil
}

func (s *MemoryStore) RecordRun(ctx context.Context, run entity.ImportRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RunLogErr != nil {
		return s.RunLogErr
	}
	s.runs = append(s.runs, run)
	return nil
}

// ListRuns returns recorded runs, newest first.
func (s *MemoryStore) ListRuns(ctx context.Context) ([]entity.ImportRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	runs := slices.Clone(s.runs)
	slices.Reverse(runs)
	return runs, nil
}

type memoryTx struct {
	books   []entity.Book
	authors []entity.Author
	links   []entity.BookAuthor
	lastID  int64
	failOn  map[string]error
}

func (t *memoryTx) FindBooksByISBN(ctx context.Context, isbn decimal.Decimal) ([]entity.Book, error) {
	if err := t.failOn[OpFindBooksByISBN]; err != nil {
		return nil, err
	}
	var out []entity.Book
	for _, b := range t.books {
		if b.ISBN.Equal(isbn) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (t *memoryTx) UpdateBookTitle(ctx context.Context, bookID int64, title string) error {
	if err := t.failOn[OpUpdateBookTitle]; err != nil {
		return err
	}
	for i := range t.books {
		if t.books[i].ID == bookID {
			t.books[i].Title = title
		}
	}
	return nil
}

func (t *memoryTx) FindAuthorsByName(ctx context.Context, name string) ([]entity.Author, error) {
	if err := t.failOn[OpFindAuthorsByName]; err != nil {
		return nil, err
	}
	var out []entity.Author
	for _, a := range t.authors {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out, nil
}

func (t *memoryTx) CreateAuthor(ctx context.Context, author *entity.Author) error {
	if err := t.failOn[OpCreateAuthor]; err != nil {
		return err
	}
	t.lastID++
	author.ID = t.lastID
	t.authors = append(t.authors, *author)
	return nil
}

func (t *memoryTx) CreateBookAuthor(ctx context.Context, link *entity.BookAuthor) error {
	if err := t.failOn[OpCreateBookAuthor]; err != nil {
		return err
	}
	t.lastID++
	link.ID = t.lastID
	t.links = append(t.links, *link)
	return nil
}

// Rows builds a sheet as read from a workbook: a Title/ISBN/Authors header
// followed by records.
func Rows(records ...[]string) [][]string {
	rows := [][]string{{"Title", "ISBN", "Authors"}}
	return append(rows, records...)
}

// Record is one Title/ISBN/Authors row with the ISBN13 prefix applied.
func Record(title, isbn, authors string) []string {
	return []string{title, "ISBN13: " + isbn, authors}
}
