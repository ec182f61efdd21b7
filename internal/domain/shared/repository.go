package shared

// Pagination defaults applied when a caller omits or mangles page parameters.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Page is a resolved, always-valid page request.
type Page struct {
	Number  int
	PerPage int
}

// ResolvePage turns optional page/per_page values into a Page.
// Missing or non-positive values fall back to DefaultPage and DefaultPerPage;
// per_page is capped at MaxPerPage.
func ResolvePage(page, perPage *int) Page {
	p := Page{Number: DefaultPage, PerPage: DefaultPerPage}
	if page != nil && *page >= 1 {
		p.Number = *page
	}
	if perPage != nil && *perPage >= 1 {
		p.PerPage = min(*perPage, MaxPerPage)
	}
	return p
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// Limit returns the maximum number of rows to return.
func (p Page) Limit() int {
	return p.PerPage
}
