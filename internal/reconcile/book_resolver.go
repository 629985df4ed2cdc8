package reconcile

import (
	"context"
	"fmt"

	"booksync/internal/entity"
	"booksync/internal/usecase"

	"github.com/shopspring/decimal"
)

// BookResolver maps an imported ISBN onto the one stored book carrying it.
type BookResolver struct {
	store usecase.Store
}

func NewBookResolver(store usecase.Store) *BookResolver {
	return &BookResolver{store: store}
}

// Resolve finds the single book with isbn and sets its title to newTitle.
// Lookup and update share one transaction. When zero or several books carry
// the ISBN it returns a *WrongISBNError and nothing is written.
func (r *BookResolver) Resolve(ctx context.Context, isbn decimal.Decimal, newTitle string) (entity.Book, error) {
	var book entity.Book
	err := r.store.InTx(ctx, func(tx usecase.Tx) error {
		books, err := tx.FindBooksByISBN(ctx, isbn)
		if err != nil {
			return fmt.Errorf("find books by isbn %s: %w", isbn, err)
		}
		if len(books) != 1 {
			return &WrongISBNError{ISBN: isbn, Matches: len(books)}
		}

		book = books[0]
		if err := tx.UpdateBookTitle(ctx, book.ID, newTitle); err != nil {
			return fmt.Errorf("update title of book %d: %w", book.ID, err)
		}
		book.Title = newTitle
		return nil
	})
	if err != nil {
		return entity.Book{}, err
	}
	return book, nil
}
