package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies every failure the pipeline can produce so the CLI
// can map it to a message and an exit code.
type Kind int

const (
	KindUnknown Kind = iota
	KindAllocation
	KindMalformedInput
	KindUnknownCommand
	KindInvalidArgument
	KindIndex
	KindState
	KindNoNumericValue
)

func (k Kind) String() string {
	switch k {
	case KindAllocation:
		return "allocation"
	case KindMalformedInput:
		return "malformed_input"
	case KindUnknownCommand:
		return "unknown_command"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindIndex:
		return "index"
	case KindState:
		return "state"
	case KindNoNumericValue:
		return "no_numeric_value"
	default:
		return "unknown"
	}
}

// KindError is implemented by every typed error in this package.
type KindError interface {
	error
	Kind() Kind
}

// KindOf walks the wrap chain and returns the Kind of the first typed
// error found, or KindUnknown.
func KindOf(err error) Kind {
	var ke KindError
	if stderrors.As(err, &ke) {
		return ke.Kind()
	}
	return KindUnknown
}

// MalformedInputError reports a quoting/escaping rule violation while
// parsing table text or the command string.
type MalformedInputError struct {
	Source string // "table" or "commands"
	Pos    int    // byte offset in the input (0-based, -1 if unknown)
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("malformed %s input at offset %d: %s", e.Source, e.Pos, e.Reason)
	}
	return fmt.Sprintf("malformed %s input: %s", e.Source, e.Reason)
}

func (e *MalformedInputError) Kind() Kind { return KindMalformedInput }

func NewMalformedInput(source string, pos int, reason string) *MalformedInputError {
	return &MalformedInputError{Source: source, Pos: pos, Reason: reason}
}

// UnknownCommandError reports a command name missing from the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", e.Name)
}

func (e *UnknownCommandError) Kind() Kind { return KindUnknownCommand }

func NewUnknownCommand(name string) *UnknownCommandError {
	return &UnknownCommandError{Name: name}
}

// InvalidArgumentError reports a command whose parameters fail its
// precondition (non-natural coordinate, empty search string, bad
// variable name, ...).
type InvalidArgumentError struct {
	Command string
	Reason  string
}

func (e *InvalidArgumentError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument to %q: %s", e.Command, e.Reason)
}

func (e *InvalidArgumentError) Kind() Kind { return KindInvalidArgument }

func NewInvalidArgument(command, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Command: command, Reason: reason}
}

// IndexError reports coordinates outside current table bounds for an
// operation that does not auto-grow.
type IndexError struct {
	Row, Col   int // requested (1-based; 0 when the axis is not involved)
	Rows, Cols int // current table extents
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of range of %dx%d table", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *IndexError) Kind() Kind { return KindIndex }

func NewIndex(row, col, rows, cols int) *IndexError {
	return &IndexError{Row: row, Col: col, Rows: rows, Cols: cols}
}

// StateError reports an operation that needs state no prior command
// established, e.g. restoring a selection before any was saved.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Reason)
}

func (e *StateError) Kind() Kind { return KindState }

func NewState(reason string) *StateError {
	return &StateError{Reason: reason}
}

// NoNumericValueError reports an extremum command over a selection with
// no numeric cells.
type NoNumericValueError struct {
	Command string
}

func (e *NoNumericValueError) Error() string {
	return fmt.Sprintf("%q found no numeric value in the current selection", e.Command)
}

func (e *NoNumericValueError) Kind() Kind { return KindNoNumericValue }

func NewNoNumericValue(command string) *NoNumericValueError {
	return &NoNumericValueError{Command: command}
}

// AllocationError wraps a failure to grow backing storage or to read
// or write the table file. Practically unrecoverable.
type AllocationError struct {
	Op    string
	Cause error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
}

func (e *AllocationError) Kind() Kind { return KindAllocation }

func (e *AllocationError) Unwrap() error { return e.Cause }

func NewAllocation(op string, cause error) *AllocationError {
	return &AllocationError{Op: op, Cause: cause}
}
