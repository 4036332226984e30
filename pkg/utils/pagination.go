package utils

// PageWindow holds normalized offset/limit pagination values.
type PageWindow struct {
	Offset int
	Limit  int
}

// GetPageWindow clamps offset and limit into a valid window. A limit of zero
// or less falls back to defaultLimit; limits above maxLimit are capped.
func GetPageWindow(offset, limit, defaultLimit, maxLimit int) PageWindow {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return PageWindow{Offset: offset, Limit: limit}
}
