// Package engine ties the pipeline together: parse the command
// sequence, load the table, execute, save. The table file is only
// written after the whole sequence has executed, so any failure leaves
// the original file untouched.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ceskyDJ/fit-izp-sps/internal/codec"
	"github.com/ceskyDJ/fit-izp-sps/internal/command"
	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
	"github.com/ceskyDJ/fit-izp-sps/internal/executor"
	"github.com/ceskyDJ/fit-izp-sps/internal/parser"
	"github.com/ceskyDJ/fit-izp-sps/internal/table"
)

// Engine runs command sequences against table files.
type Engine struct {
	delims string
	logger *slog.Logger
}

func New(delims string, logger *slog.Logger) *Engine {
	return &Engine{delims: delims, logger: logger}
}

// ValidateDelimiters rejects delimiter sets that collide with the cell
// quoting syntax.
func ValidateDelimiters(delims string) error {
	if delims == "" {
		return errors.NewInvalidArgument("delimiters", "delimiter set must not be empty")
	}
	if strings.ContainsAny(delims, "\"\\\n") {
		return errors.NewInvalidArgument("delimiters",
			`delimiter set must not contain '"', '\' or line breaks`)
	}
	return nil
}

// Run executes sequence against the table stored in file, overwriting
// it on success.
func (e *Engine) Run(sequence, file string) error {
	logger := e.logger.With(slog.String("run_id", uuid.New().String()))

	cmds, err := parser.ParseSequence(sequence)
	if err != nil {
		return err
	}
	logger.Info("command sequence parsed", slog.Int("commands", len(cmds)))

	t, err := codec.Load(file, e.delims, logger)
	if err != nil {
		return err
	}

	if err := e.execute(cmds, t, logger); err != nil {
		return err
	}

	return codec.Save(file, t, e.delims, logger)
}

// Apply executes sequence against table text and returns the resulting
// text. It is Run without the file mechanics.
func (e *Engine) Apply(sequence, input string) (string, error) {
	logger := e.logger.With(slog.String("run_id", uuid.New().String()))

	cmds, err := parser.ParseSequence(sequence)
	if err != nil {
		return "", err
	}

	t, err := codec.Parse(input, e.delims)
	if err != nil {
		return "", err
	}

	if err := e.execute(cmds, t, logger); err != nil {
		return "", err
	}

	return codec.Serialize(t, e.delims), nil
}

func (e *Engine) execute(cmds []command.Command, t *table.Table, logger *slog.Logger) error {
	st := executor.NewState()
	if err := executor.Execute(cmds, t, st, logger); err != nil {
		return fmt.Errorf("executing command sequence: %w", err)
	}
	return nil
}
