package executor

import (
	"strconv"

	"github.com/ceskyDJ/fit-izp-sps/internal/command"
	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
	"github.com/ceskyDJ/fit-izp-sps/internal/table"
)

// applyData runs one data command against the current cell
// (st.CurRow, st.CurCol).
func applyData(cmd command.Command, t *table.Table, st *State) error {
	switch c := cmd.(type) {
	case *command.InsertRow:
		if c.Above {
			return t.InsertRow(st.CurRow)
		}
		return t.InsertRow(st.CurRow + 1)
	case *command.DeleteRow:
		return t.DeleteRow(st.CurRow)
	case *command.InsertCol:
		if c.Left {
			return t.InsertCol(st.CurCol)
		}
		return t.InsertCol(st.CurCol + 1)
	case *command.DeleteCol:
		return t.DeleteCol(st.CurCol)
	case *command.SetValue:
		return t.Set(st.CurRow, st.CurCol, c.Text)
	case *command.Clear:
		return t.Set(st.CurRow, st.CurCol, "")
	case *command.Swap:
		return swapCells(c, t, st)
	case *command.Aggregate:
		return aggregate(c, t, st)
	case *command.Len:
		return cellLen(c, t, st)
	case *command.DefVar:
		val, ok := t.Get(st.CurRow, st.CurCol)
		if !ok {
			return errors.NewIndex(st.CurRow, st.CurCol, t.CountRows(), t.CountCols())
		}
		st.Vars[c.Slot] = val
		return nil
	case *command.UseVar:
		return t.Set(st.CurRow, st.CurCol, st.Vars[c.Slot])
	case *command.IncVar:
		v, ok := table.Numeric(st.Vars[c.Slot])
		if !ok {
			v = 0
		}
		st.Vars[c.Slot] = table.FormatNumber(v + 1)
		return nil
	default:
		return errors.NewUnknownCommand(cmd.Name())
	}
}

// swapCells exchanges the current cell's value with the cell at the
// explicit coordinates. Both cells must exist; swap never grows the
// table.
func swapCells(c *command.Swap, t *table.Table, st *State) error {
	cur, ok := t.Get(st.CurRow, st.CurCol)
	if !ok {
		return errors.NewIndex(st.CurRow, st.CurCol, t.CountRows(), t.CountCols())
	}
	other, ok := t.Get(c.Row, c.Col)
	if !ok {
		return errors.NewIndex(c.Row, c.Col, t.CountRows(), t.CountCols())
	}
	if err := t.Set(st.CurRow, st.CurCol, other); err != nil {
		return err
	}
	return t.Set(c.Row, c.Col, cur)
}

// firstCell/lastCell detect the edges of the row-major pass so the
// accumulator is reset once and the result committed once.
func firstCell(st *State) bool {
	return st.CurRow == st.Sel.RowFrom && st.CurCol == st.Sel.ColFrom
}

func lastCell(st *State) bool {
	return st.CurRow == st.Sel.RowTo && st.CurCol == st.Sel.ColTo
}

func aggregate(c *command.Aggregate, t *table.Table, st *State) error {
	if firstCell(st) {
		st.resetAccumulator()
	}

	val, ok := t.Get(st.CurRow, st.CurCol)
	if ok {
		switch c.Fn {
		case command.AggCount:
			if val != "" {
				st.accN++
			}
		default:
			if v, numeric := table.Numeric(val); numeric {
				st.acc += v
				st.accN++
			}
		}
	}

	if !lastCell(st) {
		return nil
	}

	var result string
	switch c.Fn {
	case command.AggSum:
		result = table.FormatNumber(st.acc)
	case command.AggAvg:
		if st.accN == 0 {
			return errors.NewNoNumericValue("avg")
		}
		result = table.FormatNumber(st.acc / float64(st.accN))
	case command.AggCount:
		result = strconv.Itoa(st.accN)
	}
	return setGrowing(t, c.Row, c.Col, result)
}

// cellLen stores the current cell value's length into the target cell.
// With a multi-cell selection the last application wins.
func cellLen(c *command.Len, t *table.Table, st *State) error {
	val, ok := t.Get(st.CurRow, st.CurCol)
	if !ok {
		return errors.NewIndex(st.CurRow, st.CurCol, t.CountRows(), t.CountCols())
	}
	return setGrowing(t, c.Row, c.Col, strconv.Itoa(len(val)))
}

// setGrowing writes a result cell, growing the table when the target
// lies beyond the current bounds.
func setGrowing(t *table.Table, row, col int, value string) error {
	if row > t.CountRows() || col > t.CountCols() {
		t.Resize(row, col)
	}
	return t.Set(row, col, value)
}
