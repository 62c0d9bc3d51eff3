package site

import (
	"sync/atomic"

	"github.com/ziadkadry99/webstarter/internal/playground"
)

// Holder is the site currently served. Reloads swap it whole, so a request
// always sees one consistent set of pages.
type Holder struct {
	cur atomic.Pointer[Site]
}

// NewHolder returns a holder serving s.
func NewHolder(s *Site) *Holder {
	h := &Holder{}
	h.cur.Store(s)
	return h
}

// Current returns the site being served.
func (h *Holder) Current() *Site {
	return h.cur.Load()
}

// Replace starts serving s.
func (h *Holder) Replace(s *Site) {
	h.cur.Store(s)
}

// Playgrounds returns the playground hosts of a page of the current site.
func (h *Holder) Playgrounds(page string) ([]playground.Host, bool) {
	return h.Current().Playgrounds(page)
}
