package table

import (
	"reflect"
	"testing"

	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
)

func sample() *Table {
	return &Table{Rows: []Row{
		{"a", "b"},
		{"c", "d"},
	}}
}

func TestInsertRow(t *testing.T) {
	tbl := sample()

	if err := tbl.InsertRow(2); err != nil {
		t.Fatalf("InsertRow(2) failed: %v", err)
	}
	want := []Row{{"a", "b"}, {"", ""}, {"c", "d"}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Fatalf("rows wrong. expected=%v, got=%v", want, tbl.Rows)
	}

	// Appending at size+1 is legal.
	if err := tbl.InsertRow(4); err != nil {
		t.Fatalf("InsertRow(4) failed: %v", err)
	}
	if tbl.CountRows() != 4 {
		t.Fatalf("row count wrong. expected=4, got=%d", tbl.CountRows())
	}

	if err := tbl.InsertRow(6); err == nil {
		t.Fatalf("InsertRow(6) should fail on a 4-row table")
	} else if errors.KindOf(err) != errors.KindIndex {
		t.Fatalf("error kind wrong. expected=%v, got=%v", errors.KindIndex, errors.KindOf(err))
	}
}

func TestDeleteRow(t *testing.T) {
	tbl := sample()

	if err := tbl.DeleteRow(1); err != nil {
		t.Fatalf("DeleteRow(1) failed: %v", err)
	}
	want := []Row{{"c", "d"}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Fatalf("rows wrong. expected=%v, got=%v", want, tbl.Rows)
	}

	if err := tbl.DeleteRow(2); err == nil {
		t.Fatalf("DeleteRow(2) should fail on a 1-row table")
	}
	if err := tbl.DeleteRow(0); err == nil {
		t.Fatalf("DeleteRow(0) should fail")
	}
}

func TestInsertCol(t *testing.T) {
	tbl := sample()

	if err := tbl.InsertCol(1); err != nil {
		t.Fatalf("InsertCol(1) failed: %v", err)
	}
	want := []Row{{"", "a", "b"}, {"", "c", "d"}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Fatalf("rows wrong. expected=%v, got=%v", want, tbl.Rows)
	}

	if err := tbl.InsertCol(4); err != nil {
		t.Fatalf("InsertCol(4) append failed: %v", err)
	}
	if tbl.CountCols() != 4 {
		t.Fatalf("col count wrong. expected=4, got=%d", tbl.CountCols())
	}

	if err := tbl.InsertCol(9); err == nil {
		t.Fatalf("InsertCol(9) should fail on a 4-col table")
	}
}

func TestDeleteCol(t *testing.T) {
	tbl := sample()

	if err := tbl.DeleteCol(2); err != nil {
		t.Fatalf("DeleteCol(2) failed: %v", err)
	}
	want := []Row{{"a"}, {"c"}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Fatalf("rows wrong. expected=%v, got=%v", want, tbl.Rows)
	}

	if err := tbl.DeleteCol(2); err == nil {
		t.Fatalf("DeleteCol(2) should fail on a 1-col table")
	}
}

func TestAlignRows(t *testing.T) {
	tbl := &Table{Rows: []Row{
		{"a"},
		{"b", "c", "d"},
		{},
	}}

	tbl.AlignRows()

	// Every row must end up as long as the widest row.
	for i, row := range tbl.Rows {
		if len(row) != 3 {
			t.Fatalf("rows[%d] length wrong. expected=3, got=%d", i, len(row))
		}
	}
}

func TestResizeGrowsNeverShrinks(t *testing.T) {
	tbl := sample()

	tbl.Resize(3, 4)
	if tbl.CountRows() != 3 || tbl.CountCols() != 4 {
		t.Fatalf("resize wrong. expected=3x4, got=%dx%d", tbl.CountRows(), tbl.CountCols())
	}

	tbl.Resize(1, 1)
	if tbl.CountRows() != 3 || tbl.CountCols() != 4 {
		t.Fatalf("resize must not shrink. got=%dx%d", tbl.CountRows(), tbl.CountCols())
	}
}

func TestGetSet(t *testing.T) {
	tbl := sample()

	if v, ok := tbl.Get(2, 1); !ok || v != "c" {
		t.Fatalf("Get(2,1) wrong. expected=(c,true), got=(%s,%v)", v, ok)
	}
	if _, ok := tbl.Get(3, 1); ok {
		t.Fatalf("Get(3,1) should report not found")
	}
	if _, ok := tbl.Get(0, 1); ok {
		t.Fatalf("Get(0,1) should report not found")
	}

	if err := tbl.Set(1, 2, "x"); err != nil {
		t.Fatalf("Set(1,2) failed: %v", err)
	}
	if v, _ := tbl.Get(1, 2); v != "x" {
		t.Fatalf("Set did not stick. expected=x, got=%s", v)
	}
	if err := tbl.Set(1, 3, "x"); err == nil {
		t.Fatalf("Set(1,3) should fail on a 2-col table")
	}
}

func TestTrim(t *testing.T) {
	tbl := &Table{Rows: []Row{
		{"a", "", ""},
		{"b", "", ""},
	}}

	tbl.Trim()

	want := []Row{{"a"}, {"b"}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Fatalf("rows wrong. expected=%v, got=%v", want, tbl.Rows)
	}
}

func TestTrimKeepsOneColumn(t *testing.T) {
	tbl := &Table{Rows: []Row{{""}, {""}}}

	tbl.Trim()

	if tbl.CountCols() != 1 {
		t.Fatalf("col count wrong. expected=1, got=%d", tbl.CountCols())
	}
}
