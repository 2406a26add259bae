package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wfstlib/wfst/pkg/fst"
	"github.com/wfstlib/wfst/pkg/types"
)

var compileSymbols string

func init() {
	cmd := &cobra.Command{
		Use:   "compile-string <input> <output> <out-fst>",
		Short: "Compile a linear-chain transducer mapping one whitespace-separated token string to another",
		Long: `compile-string builds the straight-line transducer that maps the
whitespace-separated tokens of <input> to the whitespace-separated tokens
of <output>, one arc per token pair (the shorter side is padded with
epsilon), and writes it to <out-fst>.

Example:
  fstctl compile-string "c a t" "c a t s" out.fst --symbols syms.tsv`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args)
		},
	}
	cmd.Flags().
		StringVar(&compileSymbols, "symbols", "", "symbol table file (created if missing)")
	rootCmd.AddCommand(cmd)
}

func runCompile(args []string) error {
	syms, err := loadSymbolTable(compileSymbols)
	if err != nil {
		return err
	}

	ilabels := internTokens(syms, strings.Fields(args[0]))
	olabels := internTokens(syms, strings.Fields(args[1]))

	t := fst.CompileString(ilabels, olabels)
	defer t.Close()

	if err := saveTransducer(t, args[2], syms); err != nil {
		return fmt.Errorf("save %s: %w", args[2], err)
	}
	if compileSymbols != "" {
		if err := writeSymbolTable(syms, compileSymbols); err != nil {
			return err
		}
	}

	printVerbose("compiled %d states -> %s\n", t.NumStates(), args[2])
	return nil
}

func internTokens(syms *fst.SymbolTable, tokens []string) []types.Label {
	labels := make([]types.Label, len(tokens))
	for i, tok := range tokens {
		labels[i] = syms.AddSymbol(tok)
	}
	return labels
}
