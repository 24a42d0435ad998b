package dto

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// window resolves page and limit defaults and returns the [start, end) range
// of a result set of size total. A page past the end yields start == end ==
// total without multiplying, so any page value is safe.
func window(total, page, limit int) (p, l, start, end int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if page-1 > total/limit {
		return page, limit, total, total
	}
	start = (page - 1) * limit
	end = start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return page, limit, start, end
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}
