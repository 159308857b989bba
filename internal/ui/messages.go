package ui

import (
	"time"

	"swiper/internal/domain"
)

// PageRequestMsg carries an externally chosen page index into the model
type PageRequestMsg struct {
	Index int
}

// frameMsg advances the settle animation by one frame
type frameMsg time.Time

// pagerDoneMsg contains the result of showing a page in the pager
type pagerDoneMsg struct {
	title string
	err   error
}

// pagesReloadedMsg contains the result of re-reading the page source
type pagesReloadedMsg struct {
	set domain.PageSet
	err error
}
