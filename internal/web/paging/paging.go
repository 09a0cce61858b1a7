// Package paging implements the two pagination schemes the storefront uses:
// client-side slicing for the public store grid, and the backend's page
// metadata for the admin tables, plus the five-button page window both share.
package paging

// StorePageSize is the number of products shown per page of the public store.
const StorePageSize = 6

// Page describes one client-side slice of a filtered product list.
type Page struct {
	Number     int
	TotalPages int
	// Start and End bound the slice of the filtered list, End exclusive.
	Start int
	End   int
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate slices a list of total items into pages of size perPage and
// resolves the requested page. A list with no items still yields one empty
// page. Requests past the last page clamp down to it; requests below the
// first clamp up.
func Paginate(total, perPage, requested int) Page {
	if perPage < 1 {
		perPage = 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if requested > pages {
		requested = pages
	}
	if requested < 1 {
		requested = 1
	}
	start := (requested - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{
		Number:     requested,
		TotalPages: pages,
		Start:      start,
		End:        end,
	}
}

// Meta is the pagination envelope the backend attaches to admin list
// responses.
type Meta struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
	PrevNum int  `json:"prev_num"`
	NextNum int  `json:"next_num"`
}

// Window returns the page numbers shown as direct buttons around current.
// Five pages or fewer show everything; otherwise a five-wide window slides
// with current and pins to either end of the range.
func Window(current, pages int) []int {
	if pages < 1 {
		return nil
	}
	if pages <= 5 {
		return span(1, pages)
	}
	switch {
	case current <= 3:
		return span(1, 5)
	case current >= pages-2:
		return span(pages-4, pages)
	default:
		return span(current-2, current+2)
	}
}

func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}
