package entity

// BookAuthor places one author on a book. Num is 1-based.
type BookAuthor struct {
	ID       int64 `json:"id"`
	BookID   int64 `json:"book_id"`
	AuthorID int64 `json:"author_id"`
	Num      int   `json:"num"`
}
