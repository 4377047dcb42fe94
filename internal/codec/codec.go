// Package codec converts between delimited table text and the
// in-memory Table.
//
// Cells are separated by any character of the delimiter set, rows by
// line breaks. A cell may be wrapped in double quotes; inside the pair
// delimiters and line breaks lose their separating meaning. A
// backslash escapes the character after it, inside or outside quotes.
package codec

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
	"github.com/ceskyDJ/fit-izp-sps/internal/table"
)

// Parse parses delimited text into a rectangular table. delims is the
// set of cell delimiter characters; its first character is only
// relevant for serialization.
func Parse(text string, delims string) (*table.Table, error) {
	t := table.New()

	row := make(table.Row, 0)
	var cell strings.Builder

	// cellStart: no byte of the current cell consumed yet.
	// quoted: the current cell was opened with a quote.
	// justClosed: the previous byte closed a quoted cell.
	cellStart := true
	inQuotes := false
	quoted := false
	justClosed := false

	endCell := func() {
		row = append(row, cell.String())
		cell.Reset()
		cellStart = true
		quoted = false
		justClosed = false
	}
	endRow := func() {
		endCell()
		t.Rows = append(t.Rows, row)
		row = make(table.Row, 0)
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if c == '\\' {
			if i+1 >= len(text) {
				return nil, errors.NewMalformedInput("table", i, "dangling backslash at end of input")
			}
			if justClosed {
				return nil, errors.NewMalformedInput("table", i, "character after closing quote")
			}
			i++
			cell.WriteByte(text[i])
			cellStart = false
			continue
		}

		if inQuotes {
			if c == '"' {
				// Closing quote must be followed by a delimiter or line end.
				inQuotes = false
				justClosed = true
				continue
			}
			cell.WriteByte(c)
			continue
		}

		switch {
		case c == '"':
			if !cellStart {
				return nil, errors.NewMalformedInput("table", i, "quote inside unquoted cell")
			}
			inQuotes = true
			quoted = true
			cellStart = false
		case c == '\n':
			endRow()
		case strings.IndexByte(delims, c) >= 0:
			endCell()
		default:
			if justClosed || (quoted && !inQuotes) {
				return nil, errors.NewMalformedInput("table", i, "character after closing quote")
			}
			cell.WriteByte(c)
			cellStart = false
		}
	}

	if inQuotes {
		return nil, errors.NewMalformedInput("table", len(text), "unterminated quoted cell")
	}
	// Flush a final row without a trailing line break.
	if cell.Len() > 0 || len(row) > 0 || quoted || !cellStart {
		endRow()
	}

	t.AlignRows()
	return t, nil
}

// ParseReader reads r to the end and parses it. Read failures surface
// as AllocationError since they abort the run the same way storage
// exhaustion would.
func ParseReader(r io.Reader, delims string) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewAllocation("reading table input", err)
	}
	return Parse(string(data), delims)
}

// Serialize renders t as delimited text. Cells are joined with the
// primary delimiter (first of delims) and quoted only when the raw
// value contains a delimiter character or a line break; quotes and
// backslashes inside a quoted cell get a leading backslash. Trailing
// all-empty columns are trimmed first.
func Serialize(t *table.Table, delims string) string {
	t.Trim()

	primary := byte(' ')
	if len(delims) > 0 {
		primary = delims[0]
	}

	var out strings.Builder
	for _, row := range t.Rows {
		for c, cell := range row {
			if c > 0 {
				out.WriteByte(primary)
			}
			writeCell(&out, cell, delims)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func writeCell(out *strings.Builder, value, delims string) {
	if !strings.ContainsAny(value, delims+"\n") {
		out.WriteString(value)
		return
	}
	out.WriteByte('"')
	for i := 0; i < len(value); i++ {
		if value[i] == '"' || value[i] == '\\' {
			out.WriteByte('\\')
		}
		out.WriteByte(value[i])
	}
	out.WriteByte('"')
}

// Load reads and parses the table file at path.
func Load(path, delims string, logger *slog.Logger) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewAllocation(fmt.Sprintf("reading %s", path), err)
	}
	t, err := Parse(string(data), delims)
	if err != nil {
		return nil, err
	}
	logger.Info("table loaded",
		slog.String("file", path),
		slog.Int("rows", t.CountRows()),
		slog.Int("cols", t.CountCols()),
	)
	return t, nil
}

// Save serializes t and overwrites path via a temp file and an atomic
// rename, so a failed write never corrupts the original file.
func Save(path string, t *table.Table, delims string, logger *slog.Logger) error {
	text := Serialize(t, delims)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(text), 0644); err != nil {
		return errors.NewAllocation(fmt.Sprintf("writing %s", tmpPath), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.NewAllocation(fmt.Sprintf("replacing %s", path), err)
	}

	logger.Info("table saved",
		slog.String("file", path),
		slog.Int("rows", t.CountRows()),
		slog.Int("cols", t.CountCols()),
	)
	return nil
}
