package sheet

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ISBNPrefix is written in front of every exported ISBN. Imported ISBN cells
// carry a prefix of the same width, which is dropped without being checked.
const ISBNPrefix = "ISBN13: "

const (
	isbnPrefixLen = len(ISBNPrefix)
	isbnMaxDigits = 13
)

var (
	ErrMalformedISBN       = errors.New("malformed isbn")
	ErrMalformedAuthorList = errors.New("malformed author list")
	ErrInvalidRow          = errors.New("invalid row")
)

var authorSeparator = regexp.MustCompile(`\s*,\s*`)

var isbnLimit = decimal.New(1, isbnMaxDigits)

// Row is one parsed import record.
type Row struct {
	Title   string          `validate:"max=100"`
	ISBN    decimal.Decimal `validate:"-"`
	Authors []string        `validate:"min=1,dive,required,max=50"`
}

// Parser turns raw sheet rows into Rows. Field bounds follow the widths of
// the books and authors tables.
type Parser struct {
	validate *validator.Validate
}

func NewParser() *Parser {
	return &Parser{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (p *Parser) Parse(cols Columns, raw []string) (Row, error) {
	isbn, err := ParseISBN(cell(raw, cols.ISBN))
	if err != nil {
		return Row{}, err
	}
	authors, err := ParseAuthors(cell(raw, cols.Authors))
	if err != nil {
		return Row{}, err
	}
	row := Row{
		Title:   cell(raw, cols.Title),
		ISBN:    isbn,
		Authors: authors,
	}
	if err := p.validate.Struct(row); err != nil {
		return Row{}, fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}
	return row, nil
}

// ParseISBN reads cells such as "ISBN13: 9780131103627". Trailing spaces are
// trimmed and the first eight characters are skipped; the rest must be a
// base-10 integer of at most 13 digits. A leading sign is accepted, so
// "ISBN13: -42" yields -42.
func ParseISBN(s string) (decimal.Decimal, error) {
	s = trimTrailingSpaces(s)
	runes := []rune(s)
	if len(runes) < isbnPrefixLen {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is shorter than the %d character prefix", ErrMalformedISBN, s, isbnPrefixLen)
	}
	digits := string(runes[isbnPrefixLen:])
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %v", ErrMalformedISBN, digits, err)
	}
	isbn := decimal.NewFromInt(n)
	if isbn.Abs().GreaterThanOrEqual(isbnLimit) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q has more than %d digits", ErrMalformedISBN, digits, isbnMaxDigits)
	}
	return isbn, nil
}

// ParseAuthors splits a comma separated author list. Whitespace around the
// commas is dropped, as are empty names at the end of the list.
func ParseAuthors(s string) ([]string, error) {
	names := authorSeparator.Split(trimTrailingSpaces(s), -1)
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no authors in %q", ErrMalformedAuthorList, s)
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name at position %d in %q", ErrMalformedAuthorList, i+1, s)
		}
	}
	return names, nil
}

// FormatISBN renders an ISBN the way import sheets carry it.
func FormatISBN(isbn decimal.Decimal) string {
	return ISBNPrefix + isbn.String()
}

func trimTrailingSpaces(s string) string {
	return strings.TrimRight(s, " ")
}
