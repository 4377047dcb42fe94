package parser

import (
	"reflect"
	"testing"

	"github.com/ceskyDJ/fit-izp-sps/internal/command"
	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
)

func TestParseSequence(t *testing.T) {
	input := `[1,1]set X;[2,1,_,_]clear;[find ab c];[min];[max];[set];[_];swap 1,2;sum 2,3;def _0;use _9;inc _5;irow;acol`

	cmds, err := ParseSequence(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []command.Command{
		&command.Select{Row: command.Coord{N: 1}, Col: command.Coord{N: 1}},
		&command.SetValue{Text: "X"},
		&command.Window{
			R1: command.Coord{N: 2}, C1: command.Coord{N: 1},
			R2: command.Coord{Open: true}, C2: command.Coord{Open: true},
		},
		&command.Clear{},
		&command.Find{Needle: "ab c"},
		&command.SelectMin{},
		&command.SelectMax{},
		&command.SaveSelection{},
		&command.RestoreSelection{},
		&command.Swap{Row: 1, Col: 2},
		&command.Aggregate{Fn: command.AggSum, Row: 2, Col: 3},
		&command.DefVar{Slot: 0},
		&command.UseVar{Slot: 9},
		&command.IncVar{Slot: 5},
		&command.InsertRow{Above: true},
		&command.InsertCol{Left: false},
	}

	if len(cmds) != len(expected) {
		t.Fatalf("command count wrong. expected=%d, got=%d", len(expected), len(cmds))
	}
	for i := range expected {
		if !reflect.DeepEqual(cmds[i], expected[i]) {
			t.Fatalf("cmds[%d] wrong. expected=%#v, got=%#v", i, expected[i], cmds[i])
		}
	}
}

func TestParseOpenCoordSpellings(t *testing.T) {
	// "_" and "-" both mean open-ended.
	cmds, err := ParseSequence(`[-,_]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sel, ok := cmds[0].(*command.Select)
	if !ok {
		t.Fatalf("command type wrong. expected=*command.Select, got=%T", cmds[0])
	}
	if !sel.Row.Open || !sel.Col.Open {
		t.Fatalf("coords wrong. expected both open, got=%v,%v", sel.Row, sel.Col)
	}
}

func TestParseEmptySequence(t *testing.T) {
	cmds, err := ParseSequence("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) != 0 {
		t.Fatalf("command count wrong. expected=0, got=%d", len(cmds))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected errors.Kind
	}{
		{"unknown command", "frobnicate", errors.KindUnknownCommand},
		{"unknown bracket keyword", "[avg]", errors.KindUnknownCommand},
		{"zero coordinate", "[0,1]", errors.KindInvalidArgument},
		{"negative coordinate", "[-5,1]", errors.KindInvalidArgument},
		{"three coordinates", "[1,2,3]", errors.KindMalformedInput},
		{"bare single coordinate", "[5]", errors.KindMalformedInput},
		{"unterminated selection", "[1,1", errors.KindMalformedInput},
		{"empty selection", "[]", errors.KindMalformedInput},
		{"find without needle", "[find]", errors.KindInvalidArgument},
		{"set without value", "set", errors.KindInvalidArgument},
		{"set with two values", "set a b", errors.KindInvalidArgument},
		{"clear with parameter", "clear x", errors.KindInvalidArgument},
		{"swap without comma", "swap 12", errors.KindInvalidArgument},
		{"swap zero row", "swap 0,1", errors.KindInvalidArgument},
		{"sum open target", "sum _,1", errors.KindInvalidArgument},
		{"bad variable", "def _x", errors.KindInvalidArgument},
		{"long variable", "use _12", errors.KindInvalidArgument},
	}

	for _, tt := range tests {
		_, err := ParseSequence(tt.input)
		if err == nil {
			t.Fatalf("%s - expected error for %q", tt.name, tt.input)
		}
		if errors.KindOf(err) != tt.expected {
			t.Fatalf("%s - kind wrong. expected=%v, got=%v", tt.name, tt.expected, errors.KindOf(err))
		}
	}
}
