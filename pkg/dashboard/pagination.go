package dashboard

const (
	EntitiesPerPage = 6
	UsersPerPage    = 10

	pageWindowSize = 5
)

// PageInfo describes one page of a filtered collection. Start and End are
// slice bounds into that collection.
type PageInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalItems int   `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	Start      int   `json:"start"`
	End        int   `json:"end"`
	Window     []int `json:"window"`
}

// Paginate clamps page into the valid range and computes the page buttons
// to show: at most five, sliding with the current page and pinned at both
// ends.
func Paginate(total, perPage, page int) PageInfo {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	totalPages := (total + perPage - 1) / perPage

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)

	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
		Window:     pageWindow(totalPages, page),
	}
}

func pageWindow(totalPages, current int) []int {
	n := min(pageWindowSize, totalPages)
	window := make([]int, n)
	for i := range window {
		switch {
		case totalPages <= pageWindowSize:
			window[i] = i + 1
		case current <= 3:
			window[i] = i + 1
		case current >= totalPages-2:
			window[i] = totalPages - 4 + i
		default:
			window[i] = current - 2 + i
		}
	}
	return window
}

func pageOf[T any](items []T, p PageInfo) []T {
	out := make([]T, p.End-p.Start)
	copy(out, items[p.Start:p.End])
	return out
}
