package search

import (
	"fmt"
	"html/template"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Rendered is a query's results together with their rendered panel.
type Rendered struct {
	Results Results
	HTML    template.HTML
}

// Cache memoizes rendered panels by normalized query. It is safe for
// concurrent use and assumes the index it is used with never changes.
type Cache struct {
	entries *lru.Cache[string, Rendered]
}

// NewCache creates a cache holding at most size queries.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = 256
	}
	entries, err := lru.New[string, Rendered](size)
	if err != nil {
		return nil, fmt.Errorf("creating search cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Lookup searches index for query, rendering on a cache miss. ok is false
// for an empty query.
func (c *Cache) Lookup(query string, index []Document) (Rendered, bool, error) {
	key := Normalize(query)
	if key == "" {
		return Rendered{}, false, nil
	}
	if r, hit := c.entries.Get(key); hit {
		return r, true, nil
	}

	res, _ := Search(key, index)
	fragment, err := RenderResults(res.Documents, res.Query)
	if err != nil {
		return Rendered{}, false, err
	}
	r := Rendered{Results: res, HTML: fragment}
	c.entries.Add(key, r)
	return r, true, nil
}

// Render returns only the rendered panel for query.
func (c *Cache) Render(query string, index []Document) (template.HTML, error) {
	r, _, err := c.Lookup(query, index)
	return r.HTML, err
}

// Len reports the number of cached queries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
