package codec

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
	"github.com/ceskyDJ/fit-izp-sps/internal/table"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		delims   string
		expected []table.Row
	}{
		{"a b\nc d\n", " ", []table.Row{{"a", "b"}, {"c", "d"}}},
		{"a b\nc d", " ", []table.Row{{"a", "b"}, {"c", "d"}}},
		{"a:b;c\nd\n", ":;", []table.Row{{"a", "b", "c"}, {"d", "", ""}}},
		{"a  b\n", " ", []table.Row{{"a", "", "b"}}},
		{"\"a b\" c\n", " ", []table.Row{{"a b", "c"}}},
		{"\"a\nb\" c\n", " ", []table.Row{{"a\nb", "c"}}},
		{`\"x y` + "\n", " ", []table.Row{{`"x`, "y"}}},
		{`a\ b c` + "\n", " ", []table.Row{{"a b", "c"}}},
		{"\"q\\\"q\" r\n", " ", []table.Row{{`q"q`, "r"}}},
		{"\"\" a\n", " ", []table.Row{{"", "a"}}},
		{"", " ", nil},
	}

	for i, tt := range tests {
		tbl, err := Parse(tt.input, tt.delims)
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tt.expected == nil {
			if tbl.CountRows() != 0 {
				t.Fatalf("tests[%d] - expected empty table, got %d rows", i, tbl.CountRows())
			}
			continue
		}
		if !reflect.DeepEqual(tbl.Rows, tt.expected) {
			t.Fatalf("tests[%d] - rows wrong. expected=%q, got=%q", i, tt.expected, tbl.Rows)
		}
	}
}

func TestParseAligns(t *testing.T) {
	tbl, err := Parse("a b c\nd\n", " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, row := range tbl.Rows {
		if len(row) != 3 {
			t.Fatalf("rows[%d] not aligned. expected=3 cells, got=%d", i, len(row))
		}
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quote inside unquoted cell", "ab\"cd\n"},
		{"unterminated quote", "\"ab\n"},
		{"text after closing quote", "\"ab\"cd e\n"},
		{"dangling backslash", "a b\\"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input, " ")
		if err == nil {
			t.Fatalf("%s - expected error for %q", tt.name, tt.input)
		}
		if errors.KindOf(err) != errors.KindMalformedInput {
			t.Fatalf("%s - kind wrong. expected=%v, got=%v",
				tt.name, errors.KindMalformedInput, errors.KindOf(err))
		}
	}
}

func TestSerialize(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{
		{"a", "b c"},
		{"d", ""},
	}}

	got := Serialize(tbl, " ")
	want := "a \"b c\"\nd \n"
	if got != want {
		t.Fatalf("output wrong. expected=%q, got=%q", want, got)
	}
}

func TestSerializeEscapesInsideQuotes(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{{`a "b\ c`}}}

	got := Serialize(tbl, " ")
	want := "\"a \\\"b\\\\ c\"\n"
	if got != want {
		t.Fatalf("output wrong. expected=%q, got=%q", want, got)
	}
}

func TestRoundTripPlain(t *testing.T) {
	// Cells without delimiter or quote characters survive load+save
	// byte for byte.
	input := "a b\nc d\n"
	tbl, err := Parse(input, " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Serialize(tbl, " "); got != input {
		t.Fatalf("round trip wrong. expected=%q, got=%q", input, got)
	}
}

func TestQuotingIdempotence(t *testing.T) {
	values := []string{"a b", "x;y", `a "quoted" b`, "line\nbreak"}

	for i, value := range values {
		tbl := &table.Table{Rows: []table.Row{{value}}}
		text := Serialize(tbl, " ;")

		back, err := Parse(text, " ;")
		if err != nil {
			t.Fatalf("values[%d] - reparse failed: %v", i, err)
		}
		got, ok := back.Get(1, 1)
		if !ok || got != value {
			t.Fatalf("values[%d] - wrong. expected=%q, got=%q", i, value, got)
		}
	}
}

func TestParseReader(t *testing.T) {
	tbl, err := ParseReader(strings.NewReader("a b\n"), " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := tbl.Get(1, 2); v != "b" {
		t.Fatalf("cell wrong. expected=b, got=%q", v)
	}
}
