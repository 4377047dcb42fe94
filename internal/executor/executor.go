// Package executor runs a parsed command sequence against a table.
//
// Selection commands run exactly once and move the current selection.
// Data commands run once per selected cell, rows outer, columns inner,
// with the iteration bounds captured before the first application.
// The first error aborts the whole run; there is no best-effort
// continuation, since later commands may assume earlier ones
// succeeded.
package executor

import (
	"log/slog"

	"github.com/ceskyDJ/fit-izp-sps/internal/command"
	"github.com/ceskyDJ/fit-izp-sps/internal/table"
)

// Execute applies cmds to t in order, mutating t and st in place.
func Execute(cmds []command.Command, t *table.Table, st *State, logger *slog.Logger) error {
	for _, cmd := range cmds {
		logger.Debug("executing command",
			slog.String("name", cmd.Name()),
			slog.String("selection", st.Sel.String()),
		)

		var err error
		if cmd.Kind() == command.Selection {
			err = runSelection(cmd, t, st)
		} else {
			err = runData(cmd, t, st)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// runData grows the table to cover the selection, then applies cmd to
// every selected cell in row-major order.
func runData(cmd command.Command, t *table.Table, st *State) error {
	sel := st.Sel
	t.Resize(sel.RowTo, sel.ColTo)

	for r := sel.RowFrom; r <= sel.RowTo; r++ {
		for c := sel.ColFrom; c <= sel.ColTo; c++ {
			st.CurRow, st.CurCol = r, c
			if err := applyData(cmd, t, st); err != nil {
				return err
			}
		}
	}
	return nil
}
