package models

import "testing"

type row struct {
	ID    int
	Title string
}

func rowTitle(r row) string { return r.Title }

func newRows() *Table[row] {
	t := &Table[row]{}
	t.SetItems([]row{
		{1, "The Matrix"},
		{2, "Blade Runner"},
		{3, "Arrival"},
		{4, "Blade Runner 2049"},
	})
	return t
}

func TestTableScrollWraps(t *testing.T) {
	tbl := newRows()

	tbl.ScrollUp()
	if tbl.Cursor() != 3 {
		t.Errorf("ScrollUp() from top -> Cursor() = %d, want 3", tbl.Cursor())
	}
	tbl.ScrollDown()
	if tbl.Cursor() != 0 {
		t.Errorf("ScrollDown() from bottom -> Cursor() = %d, want 0", tbl.Cursor())
	}
	tbl.ScrollToBottom()
	cur, ok := tbl.Current()
	if !ok || cur.ID != 4 {
		t.Errorf("Current() = %v, %v; want row 4", cur, ok)
	}
	tbl.ScrollToTop()
	if tbl.Cursor() != 0 {
		t.Errorf("ScrollToTop() -> Cursor() = %d, want 0", tbl.Cursor())
	}
}

func TestTableEmpty(t *testing.T) {
	var tbl Table[row]
	tbl.ScrollDown()
	tbl.ScrollUp()
	if _, ok := tbl.Current(); ok {
		t.Error("Current() on empty table should report !ok")
	}
	if !tbl.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestTableFilter(t *testing.T) {
	tbl := newRows()

	if !tbl.ApplyFilter("blade", rowTitle) {
		t.Fatal("ApplyFilter(blade) = false, want true")
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() after filter = %d, want 2", tbl.Len())
	}
	for _, r := range tbl.Rows() {
		if r.ID != 2 && r.ID != 4 {
			t.Errorf("filtered row %v should not match", r)
		}
	}
	if tbl.Filter() != "blade" {
		t.Errorf("Filter() = %q, want blade", tbl.Filter())
	}

	if tbl.ApplyFilter("zzz", rowTitle) {
		t.Error("ApplyFilter(zzz) = true, want false")
	}
	if tbl.Len() != 2 {
		t.Errorf("failed filter changed rows: Len() = %d, want 2", tbl.Len())
	}

	tbl.ResetFilter()
	if tbl.Len() != 4 {
		t.Errorf("Len() after reset = %d, want 4", tbl.Len())
	}
}

func TestTableSearch(t *testing.T) {
	tbl := newRows()

	if !tbl.Search("arriv", rowTitle) {
		t.Fatal("Search(arriv) = false, want true")
	}
	cur, _ := tbl.Current()
	if cur.ID != 3 {
		t.Errorf("Search(arriv) selected %v, want row 3", cur)
	}
	if tbl.Len() != 4 {
		t.Errorf("Search should not hide rows, Len() = %d", tbl.Len())
	}
	if tbl.Search("qqq", rowTitle) {
		t.Error("Search(qqq) = true, want false")
	}
}

func TestTableSetItemsClampsCursor(t *testing.T) {
	tbl := newRows()
	tbl.ScrollToBottom()
	tbl.SetItems([]row{{9, "Only"}})
	if tbl.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 after shrinking", tbl.Cursor())
	}
}
