// Package parser turns a tokenized command sequence into the ordered
// list of commands the executor runs. Command names are resolved here,
// once, against the closed registry; the executor never sees a name it
// does not know.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ceskyDJ/fit-izp-sps/internal/command"
	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
	"github.com/ceskyDJ/fit-izp-sps/internal/parser/lexer"
)

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

// ParseSequence tokenizes and parses a whole command-sequence string.
func ParseSequence(input string) ([]command.Command, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

func (p *Parser) Parse() ([]command.Command, error) {
	var cmds []command.Command

	for p.curTok.Type != lexer.EOF {
		switch p.curTok.Type {
		case lexer.SEMICOLON:
			p.nextToken()
		case lexer.LBRACKET:
			cmd, err := p.parseSelection()
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, cmd)
		case lexer.IDENT:
			cmd, err := p.parseNamed()
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, cmd)
		default:
			return nil, errors.NewMalformedInput("commands", p.curTok.Pos,
				fmt.Sprintf("expected a command, got %q", p.curTok.Literal))
		}
	}

	return cmds, nil
}

func (p *Parser) parseSelection() (command.Command, error) {
	p.nextToken() // consume [

	if p.curTok.Type == lexer.IDENT {
		return p.parseSelectionKeyword()
	}
	return p.parseSelectionCoords()
}

func (p *Parser) parseSelectionKeyword() (command.Command, error) {
	name := p.curTok.Literal
	p.nextToken()

	var cmd command.Command
	switch name {
	case "min":
		cmd = &command.SelectMin{}
	case "max":
		cmd = &command.SelectMax{}
	case "set":
		cmd = &command.SaveSelection{}
	case "find":
		if p.curTok.Type != lexer.STRING || p.curTok.Literal == "" {
			return nil, errors.NewInvalidArgument("find", "search string must not be empty")
		}
		cmd = &command.Find{Needle: p.curTok.Literal}
		p.nextToken()
	default:
		return nil, errors.NewUnknownCommand(name)
	}

	if err := p.expectClose(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (p *Parser) parseSelectionCoords() (command.Command, error) {
	var coords []command.Coord

	for {
		c, err := p.parseCoord()
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)

		if p.curTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}

	if err := p.expectClose(); err != nil {
		return nil, err
	}

	switch len(coords) {
	case 1:
		if !coords[0].Open {
			return nil, errors.NewMalformedInput("commands", p.curTok.Pos,
				"selection needs 2 or 4 coordinates")
		}
		return &command.RestoreSelection{}, nil
	case 2:
		return &command.Select{Row: coords[0], Col: coords[1]}, nil
	case 4:
		return &command.Window{R1: coords[0], C1: coords[1], R2: coords[2], C2: coords[3]}, nil
	default:
		return nil, errors.NewMalformedInput("commands", p.curTok.Pos,
			"selection needs 2 or 4 coordinates")
	}
}

func (p *Parser) parseCoord() (command.Coord, error) {
	switch p.curTok.Type {
	case lexer.OPEN:
		p.nextToken()
		return command.Coord{Open: true}, nil
	case lexer.NUMBER:
		n, err := strconv.Atoi(p.curTok.Literal)
		if err != nil {
			return command.Coord{}, errors.NewMalformedInput("commands", p.curTok.Pos,
				fmt.Sprintf("bad coordinate %q", p.curTok.Literal))
		}
		if n < 1 {
			return command.Coord{}, errors.NewInvalidArgument("select",
				fmt.Sprintf("coordinate must be at least 1, got %d", n))
		}
		p.nextToken()
		return command.Coord{N: n}, nil
	default:
		return command.Coord{}, errors.NewMalformedInput("commands", p.curTok.Pos,
			fmt.Sprintf("expected coordinate, got %q", p.curTok.Literal))
	}
}

func (p *Parser) expectClose() error {
	if p.curTok.Type != lexer.RBRACKET {
		return errors.NewMalformedInput("commands", p.curTok.Pos,
			fmt.Sprintf("expected ']', got %q", p.curTok.Literal))
	}
	p.nextToken()
	return nil
}

func (p *Parser) parseNamed() (command.Command, error) {
	name := p.curTok.Literal
	p.nextToken()

	var params []string
	for p.curTok.Type == lexer.STRING {
		params = append(params, p.curTok.Literal)
		p.nextToken()
	}

	switch name {
	case "irow":
		return noParams(name, params, &command.InsertRow{Above: true})
	case "arow":
		return noParams(name, params, &command.InsertRow{Above: false})
	case "drow":
		return noParams(name, params, &command.DeleteRow{})
	case "icol":
		return noParams(name, params, &command.InsertCol{Left: true})
	case "acol":
		return noParams(name, params, &command.InsertCol{Left: false})
	case "dcol":
		return noParams(name, params, &command.DeleteCol{})
	case "clear":
		return noParams(name, params, &command.Clear{})
	case "set":
		if len(params) != 1 {
			return nil, errors.NewInvalidArgument(name, "expected exactly one value")
		}
		return &command.SetValue{Text: params[0]}, nil
	case "swap":
		row, col, err := cellRef(name, params)
		if err != nil {
			return nil, err
		}
		return &command.Swap{Row: row, Col: col}, nil
	case "sum":
		row, col, err := cellRef(name, params)
		if err != nil {
			return nil, err
		}
		return &command.Aggregate{Fn: command.AggSum, Row: row, Col: col}, nil
	case "avg":
		row, col, err := cellRef(name, params)
		if err != nil {
			return nil, err
		}
		return &command.Aggregate{Fn: command.AggAvg, Row: row, Col: col}, nil
	case "count":
		row, col, err := cellRef(name, params)
		if err != nil {
			return nil, err
		}
		return &command.Aggregate{Fn: command.AggCount, Row: row, Col: col}, nil
	case "len":
		row, col, err := cellRef(name, params)
		if err != nil {
			return nil, err
		}
		return &command.Len{Row: row, Col: col}, nil
	case "def":
		slot, err := varSlot(name, params)
		if err != nil {
			return nil, err
		}
		return &command.DefVar{Slot: slot}, nil
	case "use":
		slot, err := varSlot(name, params)
		if err != nil {
			return nil, err
		}
		return &command.UseVar{Slot: slot}, nil
	case "inc":
		slot, err := varSlot(name, params)
		if err != nil {
			return nil, err
		}
		return &command.IncVar{Slot: slot}, nil
	default:
		return nil, errors.NewUnknownCommand(name)
	}
}

func noParams(name string, params []string, cmd command.Command) (command.Command, error) {
	if len(params) != 0 {
		return nil, errors.NewInvalidArgument(name, "takes no parameters")
	}
	return cmd, nil
}

// cellRef parses the single "R,C" parameter of swap/sum/avg/count/len.
// Both coordinates must be concrete naturals; open-ended markers are
// only valid in selections.
func cellRef(name string, params []string) (int, int, error) {
	if len(params) != 1 {
		return 0, 0, errors.NewInvalidArgument(name, "expected one R,C cell reference")
	}
	parts := strings.Split(params[0], ",")
	if len(parts) != 2 {
		return 0, 0, errors.NewInvalidArgument(name,
			fmt.Sprintf("bad cell reference %q", params[0]))
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil || row < 1 {
		return 0, 0, errors.NewInvalidArgument(name,
			fmt.Sprintf("row must be a natural number, got %q", parts[0]))
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil || col < 1 {
		return 0, 0, errors.NewInvalidArgument(name,
			fmt.Sprintf("column must be a natural number, got %q", parts[1]))
	}
	return row, col, nil
}

// varSlot parses the single _0.._9 parameter of def/use/inc.
func varSlot(name string, params []string) (int, error) {
	if len(params) != 1 {
		return 0, errors.NewInvalidArgument(name, "expected one variable name")
	}
	v := params[0]
	if len(v) != 2 || v[0] != '_' || v[1] < '0' || v[1] > '9' {
		return 0, errors.NewInvalidArgument(name,
			fmt.Sprintf("variable name must match _0.._9, got %q", v))
	}
	return int(v[1] - '0'), nil
}
