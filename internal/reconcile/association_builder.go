package reconcile

import (
	"context"
	"fmt"

	"booksync/internal/entity"
	"booksync/internal/usecase"
)

// AssociationBuilder records the author order of a book.
//
// Links are always appended. Importing the same row twice leaves two
// associations per author; existing links are neither checked nor cleared.
type AssociationBuilder struct {
	store usecase.Store
}

func NewAssociationBuilder(store usecase.Store) *AssociationBuilder {
	return &AssociationBuilder{store: store}
}

// Link creates one association per author, numbered from 1 in slice order,
// each in its own transaction. On error the links created so far are
// returned with it.
func (b *AssociationBuilder) Link(ctx context.Context, book entity.Book, authors []entity.Author) ([]entity.BookAuthor, error) {
	links := make([]entity.BookAuthor, 0, len(authors))
	for i, author := range authors {
		link := entity.BookAuthor{
			BookID:   book.ID,
			AuthorID: author.ID,
			Num:      i + 1,
		}
		err := b.store.InTx(ctx, func(tx usecase.Tx) error {
			return tx.CreateBookAuthor(ctx, &link)
		})
		if err != nil {
			return links, fmt.Errorf("link author %d to book %d at %d: %w", author.ID, book.ID, link.Num, err)
		}
		links = append(links, link)
	}
	return links, nil
}
