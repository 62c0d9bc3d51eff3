package search

import "testing"

func TestCacheLookup(t *testing.T) {
	cache, err := NewCache(2)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	index := BuildIndex()

	if _, ok, _ := cache.Lookup("   ", index); ok {
		t.Error("empty query should not be a search")
	}

	first, ok, err := cache.Lookup("Grid", index)
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	second, _, _ := cache.Lookup(" grid", index)
	if first.HTML != second.HTML {
		t.Error("normalized queries should share a cache entry")
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}

	cache.Lookup("flex", index)
	cache.Lookup("media", index)
	if cache.Len() != 2 {
		t.Errorf("Len = %d, want bounded at 2", cache.Len())
	}
}
