package bootstrap

import "sync"

// Table is the in-memory routing table of network redirects. Entries are only
// ever appended; duplicates are kept.
type Table struct {
	mu      sync.RWMutex
	entries []NetworkRedirect
}

func NewTable() *Table {
	return &Table{}
}

func (t *Table) Add(redirects ...NetworkRedirect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, redirects...)
}

func (t *Table) Entries() []NetworkRedirect {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]NetworkRedirect, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
