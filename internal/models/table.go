package models

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Table holds the rows of one screen together with the cursor and an
// optional fuzzy filter. Rows is what the screen draws; Items is always
// the full, unfiltered data set as last fetched.
type Table[T any] struct {
	Items    []T
	filtered []T
	filter   string
	cursor   int
}

// SetItems replaces the data set. The cursor is kept on the same index
// where possible and an active filter is re-applied by the caller via
// ApplyFilter.
func (t *Table[T]) SetItems(items []T) {
	t.Items = items
	t.filtered = nil
	t.filter = ""
	t.clampCursor()
}

// Rows returns the visible rows (filtered when a filter is active).
func (t *Table[T]) Rows() []T {
	if t.filtered != nil {
		return t.filtered
	}
	return t.Items
}

// Len returns the number of visible rows.
func (t *Table[T]) Len() int {
	return len(t.Rows())
}

// IsEmpty reports whether the table has no data at all.
func (t *Table[T]) IsEmpty() bool {
	return len(t.Items) == 0
}

// Cursor returns the selected row index.
func (t *Table[T]) Cursor() int {
	return t.cursor
}

// Current returns the selected row. ok is false when there are no rows.
func (t *Table[T]) Current() (row T, ok bool) {
	rows := t.Rows()
	if len(rows) == 0 {
		return row, false
	}
	return rows[t.cursor], true
}

// ScrollUp moves the cursor up, wrapping to the last row.
func (t *Table[T]) ScrollUp() {
	n := t.Len()
	if n == 0 {
		return
	}
	t.cursor = (t.cursor - 1 + n) % n
}

// ScrollDown moves the cursor down, wrapping to the first row.
func (t *Table[T]) ScrollDown() {
	n := t.Len()
	if n == 0 {
		return
	}
	t.cursor = (t.cursor + 1) % n
}

// ScrollToTop selects the first row.
func (t *Table[T]) ScrollToTop() {
	t.cursor = 0
}

// ScrollToBottom selects the last row.
func (t *Table[T]) ScrollToBottom() {
	if n := t.Len(); n > 0 {
		t.cursor = n - 1
	}
}

// Select moves the cursor to row i of the visible rows.
func (t *Table[T]) Select(i int) {
	t.cursor = i
	t.clampCursor()
}

// Filter returns the active filter text.
func (t *Table[T]) Filter() string {
	return t.filter
}

// ApplyFilter narrows the visible rows to those whose text fuzzily
// matches query, best match first. It returns false and leaves the
// table unchanged when nothing matches.
func (t *Table[T]) ApplyFilter(query string, text func(T) string) bool {
	if query == "" {
		t.ResetFilter()
		return true
	}
	idx := t.rank(query, text)
	if len(idx) == 0 {
		return false
	}
	rows := make([]T, 0, len(idx))
	for _, i := range idx {
		rows = append(rows, t.Items[i])
	}
	t.filtered = rows
	t.filter = query
	t.cursor = 0
	return true
}

// ResetFilter shows every row again.
func (t *Table[T]) ResetFilter() {
	t.filtered = nil
	t.filter = ""
	t.clampCursor()
}

// Search moves the cursor to the best fuzzy match for query without
// hiding any rows. It returns false when nothing matches.
func (t *Table[T]) Search(query string, text func(T) string) bool {
	if query == "" {
		return false
	}
	t.ResetFilter()
	idx := t.rank(query, text)
	if len(idx) == 0 {
		return false
	}
	t.cursor = idx[0]
	return true
}

func (t *Table[T]) rank(query string, text func(T) string) []int {
	targets := make([]string, len(t.Items))
	for i, item := range t.Items {
		targets[i] = text(item)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)
	idx := make([]int, 0, len(ranks))
	for _, r := range ranks {
		idx = append(idx, r.OriginalIndex)
	}
	return idx
}

func (t *Table[T]) clampCursor() {
	n := t.Len()
	switch {
	case n == 0:
		t.cursor = 0
	case t.cursor >= n:
		t.cursor = n - 1
	case t.cursor < 0:
		t.cursor = 0
	}
}
