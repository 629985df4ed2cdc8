package reconcile

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrWrongISBN = errors.New("isbn is not unique or does not exist")

// WrongISBNError reports an ISBN that did not resolve to exactly one book.
type WrongISBNError struct {
	ISBN    decimal.Decimal
	Matches int
}

func (e *WrongISBNError) Error() string {
	return fmt.Sprintf("ISBN %s is not unique or does not exist (%d matches)", e.ISBN, e.Matches)
}

func (e *WrongISBNError) Is(target error) bool {
	return target == ErrWrongISBN
}
