package store

import (
	"context"

	"booksync/internal/entity"
)

// CreateBookAuthor always inserts. books_authors has no uniqueness
// constraint, so a repeated import adds a second row per author.
func (t pgTx) CreateBookAuthor(ctx context.Context, link *entity.BookAuthor) error {
	const query = `
	INSERT INTO books_authors (books_id, authors_id, num)
	VALUES ($1, $2, $3)
	RETURNING id
	`
	return t.tx.QueryRow(ctx, query, link.BookID, link.AuthorID, link.Num).Scan(&link.ID)
}

func (r *PG) ListBookAuthors(ctx context.Context) ([]entity.BookAuthor, error) {
	rows, err := r.db.Query(ctx, `SELECT id, books_id, authors_id, num FROM books_authors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []entity.BookAuthor
	for rows.Next() {
		var l entity.BookAuthor
		if err := rows.Scan(&l.ID, &l.BookID, &l.AuthorID, &l.Num); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
