package entity

import "github.com/shopspring/decimal"

// Book is created outside of booksync; imports only ever rewrite Title.
type Book struct {
	ID    int64           `json:"id"`
	ISBN  decimal.Decimal `json:"isbn"`
	Title string          `json:"title"`
	Cover string          `json:"cover"`
}
