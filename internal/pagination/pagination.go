// Package pagination windows a list into fixed-size pages.
package pagination

const (
	DefaultPerPage = 50
	maxVisible     = 5
)

type Paginator[T any] struct {
	items   []T
	page    int
	perPage int
}

func New[T any](items []T, perPage int) *Paginator[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &Paginator[T]{items: items, page: 1, perPage: perPage}
}

// SetItems swaps the underlying list. The page resets to 1 when the current
// page no longer exists.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	if p.page > p.TotalPages() {
		p.page = 1
	}
}

func (p *Paginator[T]) Page() int       { return p.page }
func (p *Paginator[T]) PerPage() int    { return p.perPage }
func (p *Paginator[T]) TotalItems() int { return len(p.items) }

func (p *Paginator[T]) TotalPages() int {
	pages := (len(p.items) + p.perPage - 1) / p.perPage
	if pages < 1 {
		return 1
	}
	return pages
}

func (p *Paginator[T]) Items() []T {
	start := (p.page - 1) * p.perPage
	if start >= len(p.items) {
		return []T{}
	}
	end := start + p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// StartIndex is the 1-based position of the first item on the page, 0 when empty.
func (p *Paginator[T]) StartIndex() int {
	if len(p.items) == 0 {
		return 0
	}
	return (p.page-1)*p.perPage + 1
}

func (p *Paginator[T]) EndIndex() int {
	end := p.page * p.perPage
	if end > len(p.items) {
		return len(p.items)
	}
	return end
}

// GoTo ignores out-of-range pages.
func (p *Paginator[T]) GoTo(page int) {
	if page >= 1 && page <= p.TotalPages() {
		p.page = page
	}
}

func (p *Paginator[T]) Next() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

func (p *Paginator[T]) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// VisiblePages returns at most five page numbers centred on the current page.
func (p *Paginator[T]) VisiblePages() []int {
	total, current := p.TotalPages(), p.page

	var from, to int
	switch {
	case total <= maxVisible:
		from, to = 1, total
	case current <= 3:
		from, to = 1, maxVisible
	case current >= total-2:
		from, to = total-maxVisible+1, total
	default:
		from, to = current-2, current+2
	}

	pages := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		pages = append(pages, i)
	}
	return pages
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
}

// Paginate is the one-shot form used by list endpoints.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	p := New(items, perPage)
	p.GoTo(page)
	return Page[T]{
		Items:      p.Items(),
		Page:       p.Page(),
		PerPage:    p.PerPage(),
		TotalItems: p.TotalItems(),
		TotalPages: p.TotalPages(),
		StartIndex: p.StartIndex(),
		EndIndex:   p.EndIndex(),
	}
}
