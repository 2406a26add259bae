package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertSymbols string

func init() {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a transducer between the text and binary formats",
		Long: `convert reads <in> and writes it to <out>, converting between the
engine's text format (OpenFst-style, one line per arc) and its binary
format based on each path's extension (".bin" is binary, anything else is
text).

Example:
  fstctl convert lexicon.fst lexicon.bin
  fstctl convert lexicon.bin lexicon.fst --symbols syms.tsv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	cmd.Flags().
		StringVar(&convertSymbols, "symbols", "", "symbol table file (text format only)")
	rootCmd.AddCommand(cmd)
}

func runConvert(args []string) error {
	in, out := args[0], args[1]

	syms, err := loadSymbolTable(convertSymbols)
	if err != nil {
		return err
	}

	t, err := loadTransducer(in, syms)
	if err != nil {
		return fmt.Errorf("load %s: %w", in, err)
	}
	defer t.Close()

	if err := saveTransducer(t, out, syms); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	printVerbose("converted %s -> %s (%d states)\n", in, out, t.NumStates())
	return nil
}
