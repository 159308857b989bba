package domain

// Page is one unit of horizontally paged content
type Page struct {
	Title  string
	Body   string
	Source string // file the page was loaded from
}

// PageSet is the ordered collection shown by the pager
type PageSet struct {
	Root  string
	Pages []Page
}

// Len returns the number of pages, never less than one for display purposes
func (s PageSet) Len() int {
	if len(s.Pages) == 0 {
		return 1
	}
	return len(s.Pages)
}
