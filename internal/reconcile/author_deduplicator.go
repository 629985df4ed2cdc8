package reconcile

import (
	"context"
	"fmt"

	"booksync/internal/entity"
	"booksync/internal/usecase"

	"github.com/sirupsen/logrus"
)

// AuthorDeduplicator hands out one stored author per distinct name. Lookups
// go to the store every time, so authors created by earlier rows of the same
// run are found.
type AuthorDeduplicator struct {
	store usecase.Store
	log   logrus.FieldLogger
}

func NewAuthorDeduplicator(store usecase.Store, log logrus.FieldLogger) *AuthorDeduplicator {
	return &AuthorDeduplicator{store: store, log: log}
}

// ResolveOrCreate returns the author named name, creating it when no author
// has that exact name. The second result reports whether it was created.
func (d *AuthorDeduplicator) ResolveOrCreate(ctx context.Context, name string) (entity.Author, bool, error) {
	var (
		author  entity.Author
		created bool
	)
	err := d.store.InTx(ctx, func(tx usecase.Tx) error {
		existing, err := tx.FindAuthorsByName(ctx, name)
		if err != nil {
			return fmt.Errorf("find author %q: %w", name, err)
		}
		if len(existing) > 0 {
			author = existing[0]
			return nil
		}

		author = entity.Author{Name: name}
		if err := tx.CreateAuthor(ctx, &author); err != nil {
			return fmt.Errorf("create author %q: %w", name, err)
		}
		created = true
		return nil
	})
	if err != nil {
		return entity.Author{}, false, err
	}
	if created {
		d.log.WithFields(logrus.Fields{"author_id": author.ID, "name": author.Name}).Info("created author")
	}
	return author, created, nil
}

// ResolveAll resolves names in order. On error it returns how many authors
// had already been created, since those stay committed.
func (d *AuthorDeduplicator) ResolveAll(ctx context.Context, names []string) ([]entity.Author, int, error) {
	authors := make([]entity.Author, 0, len(names))
	created := 0
	for _, name := range names {
		author, isNew, err := d.ResolveOrCreate(ctx, name)
		if err != nil {
			return nil, created, err
		}
		if isNew {
			created++
		}
		authors = append(authors, author)
	}
	return authors, created, nil
}
