package executor

import (
	"fmt"

	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
)

// Selection is the current rectangular cell range, 1-based and
// inclusive on both ends.
type Selection struct {
	RowFrom, RowTo int
	ColFrom, ColTo int
}

func (s Selection) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", s.RowFrom, s.ColFrom, s.RowTo, s.ColTo)
}

// Single reports whether the selection covers exactly one cell.
func (s Selection) Single() bool {
	return s.RowFrom == s.RowTo && s.ColFrom == s.ColTo
}

// State is the run-scoped machine state: the live selection, the
// backup selection slot, the ten scratch variables and the aggregate
// accumulator. One State exists per execution run and is discarded
// afterwards.
type State struct {
	Sel Selection

	// CurRow/CurCol are set by the executor before each data-command
	// application.
	CurRow, CurCol int

	Vars [10]string

	backup    Selection
	hasBackup bool

	acc  float64
	accN int
}

// NewState returns the initial state: selection at the top-left cell,
// no backup, all variables empty.
func NewState() *State {
	return &State{Sel: Selection{RowFrom: 1, RowTo: 1, ColFrom: 1, ColTo: 1}}
}

// SaveSelection copies the live selection into the backup slot.
func (s *State) SaveSelection() {
	s.backup = s.Sel
	s.hasBackup = true
}

// RestoreSelection replaces the live selection with the saved one.
func (s *State) RestoreSelection() error {
	if !s.hasBackup {
		return errors.NewState("no selection was saved before [_]")
	}
	s.Sel = s.backup
	return nil
}

// resetAccumulator clears the aggregate accumulator at the first cell
// of an aggregate pass.
func (s *State) resetAccumulator() {
	s.acc = 0
	s.accN = 0
}
