package store

import (
	"context"

	"booksync/internal/entity"
)

func (t pgTx) FindAuthorsByName(ctx context.Context, name string) ([]entity.Author, error) {
	rows, err := t.tx.Query(ctx, `SELECT id, name FROM authors WHERE name = $1 ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (t pgTx) CreateAuthor(ctx context.Context, author *entity.Author) error {
	return t.tx.QueryRow(ctx,
		`INSERT INTO authors (name) VALUES ($1) RETURNING id`,
		author.Name,
	).Scan(&author.ID)
}

func (r *PG) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT id, COALESCE(name, '') FROM authors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}
