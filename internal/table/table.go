package table

import (
	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
)

// Row is an ordered sequence of cell values.
type Row []string

// Table is the in-memory spreadsheet: an ordered sequence of rows.
// All coordinates in the exported API are 1-based; translation to
// slice indices happens here and nowhere else.
type Table struct {
	Rows []Row
}

func New() *Table {
	return &Table{Rows: make([]Row, 0)}
}

// CountRows returns the number of rows.
func (t *Table) CountRows() int {
	return len(t.Rows)
}

// CountCols returns the widest row's length. After AlignRows every row
// has exactly this many cells.
func (t *Table) CountCols() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// InsertRow inserts an empty row so it becomes row number index.
// index may be CountRows()+1 to append.
func (t *Table) InsertRow(index int) error {
	if index < 1 || index > len(t.Rows)+1 {
		return errors.NewIndex(index, 0, len(t.Rows), t.CountCols())
	}
	row := make(Row, t.CountCols())
	i := index - 1
	t.Rows = append(t.Rows, nil)
	copy(t.Rows[i+1:], t.Rows[i:])
	t.Rows[i] = row
	return nil
}

// DeleteRow removes row number index and shifts the remainder up.
func (t *Table) DeleteRow(index int) error {
	if index < 1 || index > len(t.Rows) {
		return errors.NewIndex(index, 0, len(t.Rows), t.CountCols())
	}
	i := index - 1
	t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
	return nil
}

// InsertCol inserts an empty cell in every row so it becomes column
// number index. index may be CountCols()+1 to append.
func (t *Table) InsertCol(index int) error {
	if index < 1 || index > t.CountCols()+1 {
		return errors.NewIndex(0, index, len(t.Rows), t.CountCols())
	}
	for r, row := range t.Rows {
		i := index - 1
		if i > len(row) {
			i = len(row)
		}
		row = append(row, "")
		copy(row[i+1:], row[i:])
		row[i] = ""
		t.Rows[r] = row
	}
	return nil
}

// DeleteCol removes column number index from every row that has it.
func (t *Table) DeleteCol(index int) error {
	if index < 1 || index > t.CountCols() {
		return errors.NewIndex(0, index, len(t.Rows), t.CountCols())
	}
	for r, row := range t.Rows {
		if index > len(row) {
			continue
		}
		i := index - 1
		t.Rows[r] = append(row[:i], row[i+1:]...)
	}
	return nil
}

// AlignRows pads every row with empty cells until all rows are as long
// as the widest one. The target is the widest row's length, never its
// index.
func (t *Table) AlignRows() {
	width := t.CountCols()
	for r, row := range t.Rows {
		for len(row) < width {
			row = append(row, "")
		}
		t.Rows[r] = row
	}
}

// Resize grows (never shrinks) the table to at least rows x cols and
// re-aligns it.
func (t *Table) Resize(rows, cols int) {
	for len(t.Rows) < rows {
		t.Rows = append(t.Rows, make(Row, 0))
	}
	if cols > t.CountCols() {
		for r, row := range t.Rows {
			for len(row) < cols {
				row = append(row, "")
			}
			t.Rows[r] = row
		}
	}
	t.AlignRows()
}

// Get returns the value at (row, col). The second result is false when
// the coordinates fall outside the current table; callers use this for
// existence checks rather than treating it as a failure.
func (t *Table) Get(row, col int) (string, bool) {
	if row < 1 || row > len(t.Rows) {
		return "", false
	}
	r := t.Rows[row-1]
	if col < 1 || col > len(r) {
		return "", false
	}
	return r[col-1], true
}

// Set writes value at (row, col).
func (t *Table) Set(row, col int, value string) error {
	if row < 1 || row > len(t.Rows) {
		return errors.NewIndex(row, col, len(t.Rows), t.CountCols())
	}
	r := t.Rows[row-1]
	if col < 1 || col > len(r) {
		return errors.NewIndex(row, col, len(t.Rows), t.CountCols())
	}
	r[col-1] = value
	return nil
}

// Trim drops trailing all-empty columns, keeping at least one column
// in a non-empty table.
func (t *Table) Trim() {
	t.AlignRows()
	for t.CountCols() > 1 {
		last := t.CountCols()
		empty := true
		for _, row := range t.Rows {
			if row[last-1] != "" {
				empty = false
				break
			}
		}
		if !empty {
			break
		}
		for r, row := range t.Rows {
			t.Rows[r] = row[:last-1]
		}
	}
}
