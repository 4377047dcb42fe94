package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ceskyDJ/fit-izp-sps/internal/config"
	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
	"github.com/ceskyDJ/fit-izp-sps/internal/engine"
	"github.com/ceskyDJ/fit-izp-sps/internal/logging"
)

var (
	cfgFile string
	delims  string
)

var rootCmd = &cobra.Command{
	Use:   "sps [-d DELIMCHARS] COMMAND_SEQUENCE FILE",
	Short: "Batch spreadsheet text processor",
	Long: `sps reads a delimited text table from FILE, applies the semicolon-
separated COMMAND_SEQUENCE and overwrites FILE with the result.

Selections: [R,C]  [R1,C1,R2,C2]  [_,_]  [_]  [min]  [max]  [find STR]  [set]
Data commands: irow arow drow icol acol dcol set STR clear swap R,C
               sum R,C avg R,C count R,C len R,C def _N use _N inc _N`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&delims, "delimiter", "d", "", "cell delimiter characters (default from config, then a single space)")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./sps.toml if present)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiters = delims
	}
	if err := engine.ValidateDelimiters(cfg.Delimiters); err != nil {
		return err
	}

	logger, closeFn := logging.Setup(os.Stderr, cfg.Logging.SlogLevel(), cfg.Logging.SeqURL)
	defer closeFn()

	return engine.New(cfg.Delimiters, logger).Run(args[0], args[1])
}

// exitCode maps the error taxonomy to process exit codes. Usage and
// config problems share code 1 with cobra's own errors.
func exitCode(err error) int {
	switch errors.KindOf(err) {
	case errors.KindMalformedInput:
		return 2
	case errors.KindUnknownCommand:
		return 3
	case errors.KindInvalidArgument:
		return 4
	case errors.KindIndex:
		return 5
	case errors.KindState:
		return 6
	case errors.KindNoNumericValue:
		return 7
	case errors.KindAllocation:
		return 8
	default:
		return 1
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sps: %v\n", err)
		os.Exit(exitCode(err))
	}
}
