// Package command defines the parsed representation of the command
// mini-language: one struct per command, closed over by the executor's
// type switch.
package command

import "fmt"

// Kind separates commands that move the selection from commands that
// touch cell data.
type Kind int

const (
	// Selection commands run exactly once and may change the current
	// or backup selection.
	Selection Kind = iota
	// Data commands run once per cell of the current selection, in
	// row-major order.
	Data
)

// Coord is a 1-based row or column coordinate. Open means the literal
// "_" (or "-") form: extend to the table's current last row/column.
// There is no "absent" state; a missing coordinate is a parse error.
type Coord struct {
	N    int
	Open bool
}

func (c Coord) String() string {
	if c.Open {
		return "_"
	}
	return fmt.Sprintf("%d", c.N)
}

// Command is one parsed command of the sequence.
type Command interface {
	Name() string
	Kind() Kind
}

// Select sets the selection to a single cell, or to a whole row,
// column or the whole table when a coordinate is open.
type Select struct {
	Row, Col Coord
}

func (*Select) Name() string { return "select" }
func (*Select) Kind() Kind   { return Selection }

// Window sets the selection to the rectangle (R1,C1)-(R2,C2). The end
// coordinates may be open, meaning the current last row/column.
type Window struct {
	R1, C1, R2, C2 Coord
}

func (*Window) Name() string { return "select" }
func (*Window) Kind() Kind   { return Selection }

// SelectMin collapses the selection to its smallest numeric cell.
type SelectMin struct{}

func (*SelectMin) Name() string { return "min" }
func (*SelectMin) Kind() Kind   { return Selection }

// SelectMax collapses the selection to its largest numeric cell.
type SelectMax struct{}

func (*SelectMax) Name() string { return "max" }
func (*SelectMax) Kind() Kind   { return Selection }

// Find collapses the selection to the first cell containing Needle.
type Find struct {
	Needle string
}

func (*Find) Name() string { return "find" }
func (*Find) Kind() Kind   { return Selection }

// SaveSelection (bracketed "set") copies the current selection into
// the backup slot.
type SaveSelection struct{}

func (*SaveSelection) Name() string { return "set-v" }
func (*SaveSelection) Kind() Kind   { return Selection }

// RestoreSelection ("[_]") restores the selection saved by
// SaveSelection.
type RestoreSelection struct{}

func (*RestoreSelection) Name() string { return "restore" }
func (*RestoreSelection) Kind() Kind   { return Selection }

// InsertRow inserts an empty row above (irow) or below (arow) the
// current cell's row.
type InsertRow struct {
	Above bool
}

func (c *InsertRow) Name() string {
	if c.Above {
		return "irow"
	}
	return "arow"
}
func (*InsertRow) Kind() Kind { return Data }

// DeleteRow removes the current cell's row.
type DeleteRow struct{}

func (*DeleteRow) Name() string { return "drow" }
func (*DeleteRow) Kind() Kind   { return Data }

// InsertCol inserts an empty column left (icol) or right (acol) of the
// current cell's column.
type InsertCol struct {
	Left bool
}

func (c *InsertCol) Name() string {
	if c.Left {
		return "icol"
	}
	return "acol"
}
func (*InsertCol) Kind() Kind { return Data }

// DeleteCol removes the current cell's column.
type DeleteCol struct{}

func (*DeleteCol) Name() string { return "dcol" }
func (*DeleteCol) Kind() Kind   { return Data }

// SetValue writes Text into every selected cell.
type SetValue struct {
	Text string
}

func (*SetValue) Name() string { return "set" }
func (*SetValue) Kind() Kind   { return Data }

// Clear empties every selected cell.
type Clear struct{}

func (*Clear) Name() string { return "clear" }
func (*Clear) Kind() Kind   { return Data }

// Swap exchanges the current cell's value with the cell at (Row, Col).
type Swap struct {
	Row, Col int
}

func (*Swap) Name() string { return "swap" }
func (*Swap) Kind() Kind   { return Data }

// AggFn selects the aggregate computed over the selection.
type AggFn int

const (
	AggSum AggFn = iota
	AggAvg
	AggCount
)

// Aggregate writes sum/avg/count over the selection into the cell at
// (Row, Col), growing the table if needed.
type Aggregate struct {
	Fn       AggFn
	Row, Col int
}

func (c *Aggregate) Name() string {
	switch c.Fn {
	case AggAvg:
		return "avg"
	case AggCount:
		return "count"
	default:
		return "sum"
	}
}
func (*Aggregate) Kind() Kind { return Data }

// Len writes the current cell value's length into the cell at
// (Row, Col), growing the table if needed.
type Len struct {
	Row, Col int
}

func (*Len) Name() string { return "len" }
func (*Len) Kind() Kind   { return Data }

// DefVar copies the current cell's value into variable _Slot.
type DefVar struct {
	Slot int
}

func (*DefVar) Name() string { return "def" }
func (*DefVar) Kind() Kind   { return Data }

// UseVar writes variable _Slot's value into the current cell.
type UseVar struct {
	Slot int
}

func (*UseVar) Name() string { return "use" }
func (*UseVar) Kind() Kind   { return Data }

// IncVar adds 1 to variable _Slot, treating non-numeric content as 0.
type IncVar struct {
	Slot int
}

func (*IncVar) Name() string { return "inc" }
func (*IncVar) Kind() Kind   { return Data }
