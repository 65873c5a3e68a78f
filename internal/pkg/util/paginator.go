package util

import "strconv"

// Page describes one window of a paginated listing.
type Page struct {
	Number    int
	Size      int
	PageCount int
	Offset    int
	Total     int64
}

// Paginate computes the window for a 1-based page number over total rows.
// A number below 1 resolves to the first page and a number past the end
// clamps to the last valid page; an empty listing still has one page.
func Paginate(total int64, size, number int) Page {
	if size < 1 {
		size = 1
	}

	pageCount := int((total + int64(size) - 1) / int64(size))
	if pageCount < 1 {
		pageCount = 1
	}

	if number < 1 {
		number = 1
	}
	if number > pageCount {
		number = pageCount
	}

	return Page{
		Number:    number,
		Size:      size,
		PageCount: pageCount,
		Offset:    (number - 1) * size,
		Total:     total,
	}
}

// ParsePage reads a page query parameter; anything that is not a positive
// integer resolves to page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
