package domain

import "fmt"

// Page converts 1-based page numbers into a limit/offset pair.
// Zero values fall back to the first page of DefaultPageSize items.
func Page(page, pageSize int) (limit, offset uint64, err error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be positive", ErrInvalidPage)
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return 0, 0, fmt.Errorf("%w: page size must be within [1, %d]", ErrInvalidPage, MaxPageSize)
	}
	return uint64(pageSize), uint64(page-1) * uint64(pageSize), nil
}
