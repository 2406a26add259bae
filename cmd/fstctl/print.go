package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wfstlib/wfst/pkg/fst"
	"github.com/wfstlib/wfst/pkg/types"
)

var printSymbols string

func init() {
	cmd := &cobra.Command{
		Use:   "print-string <fst>",
		Short: "Extract the single string encoded by a linear-chain, identity transducer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrintString(args)
		},
	}
	cmd.Flags().StringVar(&printSymbols, "symbols", "", "symbol table file")
	rootCmd.AddCommand(cmd)
}

func runPrintString(args []string) error {
	syms, err := loadSymbolTable(printSymbols)
	if err != nil {
		return err
	}

	t, err := loadTransducer(args[0], syms)
	if err != nil {
		return err
	}
	defer t.Close()

	labels, w, err := t.PrintString()
	if err != nil {
		return fmt.Errorf("print-string: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"string": labelsToTokens(syms, labels),
			"weight": w,
		})
	}

	printInfo("string: %s\n", strings.Join(labelsToTokens(syms, labels), " "))
	printInfo("weight: %g\n", w)
	return nil
}

func labelsToTokens(syms *fst.SymbolTable, labels []types.Label) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == types.Epsilon {
			continue
		}
		if sym, ok := syms.Symbol(l); ok {
			out = append(out, sym)
			continue
		}
		out = append(out, fmt.Sprintf("%d", l))
	}
	return out
}
