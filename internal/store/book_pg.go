package store

import (
	"context"
	"errors"
	"fmt"

	"booksync/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrBookNotFound = errors.New("book not found")

const bookColumns = `id, isbn, COALESCE(title, ''), COALESCE(cover, '')`

func (t pgTx) FindBooksByISBN(ctx context.Context, isbn decimal.Decimal) ([]entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`
	rows, err := t.tx.Query(ctx, query, numeric(isbn))
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

func (t pgTx) UpdateBookTitle(ctx context.Context, bookID int64, title string) error {
	tag, err := t.tx.Exec(ctx, `UPDATE books SET title = $1 WHERE id = $2`, title, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrBookNotFound, bookID)
	}
	return nil
}

func (r *PG) ListBooks(ctx context.Context) ([]entity.Book, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookColumns+` FROM books`)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

// SeedBooks bulk loads books with COPY and returns how many were written.
// IDs are assigned by the database and not read back.
func (r *PG) SeedBooks(ctx context.Context, books []entity.Book) (int64, error) {
	return r.db.CopyFrom(ctx,
		pgx.Identifier{"books"},
		[]string{"isbn", "title", "cover"},
		pgx.CopyFromSlice(len(books), func(i int) ([]any, error) {
			b := books[i]
			return []any{numeric(b.ISBN), b.Title, b.Cover}, nil
		}),
	)
}

func scanBooks(rows pgx.Rows) ([]entity.Book, error) {
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var (
			b    entity.Book
			isbn pgtype.Numeric
		)
		if err := rows.Scan(&b.ID, &isbn, &b.Title, &b.Cover); err != nil {
			return nil, err
		}
		b.ISBN = fromNumeric(isbn)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
