package executor

import (
	"fmt"
	"strings"

	"github.com/ceskyDJ/fit-izp-sps/internal/command"
	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
	"github.com/ceskyDJ/fit-izp-sps/internal/table"
)

func runSelection(cmd command.Command, t *table.Table, st *State) error {
	switch c := cmd.(type) {
	case *command.Select:
		return selectCell(c, t, st)
	case *command.Window:
		return selectWindow(c, t, st)
	case *command.SelectMin:
		return selectExtreme(t, st, false)
	case *command.SelectMax:
		return selectExtreme(t, st, true)
	case *command.Find:
		return selectFind(c, t, st)
	case *command.SaveSelection:
		st.SaveSelection()
		return nil
	case *command.RestoreSelection:
		return st.RestoreSelection()
	default:
		return errors.NewUnknownCommand(cmd.Name())
	}
}

// fromCoord resolves a from-position coordinate: open means the first
// row/column.
func fromCoord(c command.Coord) int {
	if c.Open {
		return 1
	}
	return c.N
}

// toCoord resolves a to-position coordinate: open means the current
// last row/column (at least 1, so an empty table grows to one cell).
func toCoord(c command.Coord, last int) int {
	if c.Open {
		if last < 1 {
			return 1
		}
		return last
	}
	return c.N
}

func selectCell(c *command.Select, t *table.Table, st *State) error {
	sel := Selection{
		RowFrom: fromCoord(c.Row),
		RowTo:   toCoord(c.Row, t.CountRows()),
		ColFrom: fromCoord(c.Col),
		ColTo:   toCoord(c.Col, t.CountCols()),
	}
	return commitSelection(sel, t, st)
}

func selectWindow(c *command.Window, t *table.Table, st *State) error {
	sel := Selection{
		RowFrom: fromCoord(c.R1),
		ColFrom: fromCoord(c.C1),
		RowTo:   toCoord(c.R2, t.CountRows()),
		ColTo:   toCoord(c.C2, t.CountCols()),
	}
	return commitSelection(sel, t, st)
}

// commitSelection validates the bounds invariant, grows the table to
// cover the selection and makes it live.
func commitSelection(sel Selection, t *table.Table, st *State) error {
	if sel.RowFrom > sel.RowTo || sel.ColFrom > sel.ColTo {
		return errors.NewInvalidArgument("select",
			fmt.Sprintf("inverted selection %s", sel))
	}
	t.Resize(sel.RowTo, sel.ColTo)
	st.Sel = sel
	return nil
}

// selectExtreme collapses the selection to its smallest (max=false) or
// largest (max=true) numeric cell. Ties keep the first cell in
// row-major order.
func selectExtreme(t *table.Table, st *State, max bool) error {
	var (
		found        bool
		best         float64
		bestR, bestC int
	)

	sel := st.Sel
	for r := sel.RowFrom; r <= sel.RowTo; r++ {
		for c := sel.ColFrom; c <= sel.ColTo; c++ {
			val, ok := t.Get(r, c)
			if !ok {
				continue
			}
			v, ok := table.Numeric(val)
			if !ok {
				continue
			}
			if !found || (max && v > best) || (!max && v < best) {
				found = true
				best = v
				bestR, bestC = r, c
			}
		}
	}

	if !found {
		name := "min"
		if max {
			name = "max"
		}
		return errors.NewNoNumericValue(name)
	}

	st.Sel = Selection{RowFrom: bestR, RowTo: bestR, ColFrom: bestC, ColTo: bestC}
	return nil
}

// selectFind collapses the selection to the first cell containing the
// needle as a substring. No match leaves the selection unchanged.
func selectFind(c *command.Find, t *table.Table, st *State) error {
	if c.Needle == "" {
		return errors.NewInvalidArgument("find", "search string must not be empty")
	}

	sel := st.Sel
	for r := sel.RowFrom; r <= sel.RowTo; r++ {
		for col := sel.ColFrom; col <= sel.ColTo; col++ {
			val, ok := t.Get(r, col)
			if !ok {
				continue
			}
			if strings.Contains(val, c.Needle) {
				st.Sel = Selection{RowFrom: r, RowTo: r, ColFrom: col, ColTo: col}
				return nil
			}
		}
	}
	return nil
}
