package main

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

var diffSymbols string

func init() {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Unified diff of two transducers' text-format dumps",
		Long: `diff loads both transducers, writes each to the engine's text format in
memory, and prints a unified diff of the two listings -- useful for
comparing an optimize or determinize result against a hand-built
expectation.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	cmd.Flags().StringVar(&diffSymbols, "symbols", "", "symbol table file")
	rootCmd.AddCommand(cmd)
}

func runDiff(args []string) error {
	syms, err := loadSymbolTable(diffSymbols)
	if err != nil {
		return err
	}

	a, err := loadTransducer(args[0], syms)
	if err != nil {
		return err
	}
	defer a.Close()
	b, err := loadTransducer(args[1], syms)
	if err != nil {
		return err
	}
	defer b.Close()

	var bufA, bufB bytes.Buffer
	if err := a.WriteText(&bufA, syms); err != nil {
		return err
	}
	if err := b.WriteText(&bufB, syms); err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(bufA.String()),
		B:        difflib.SplitLines(bufB.String()),
		FromFile: args[0],
		ToFile:   args[1],
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	if text == "" {
		printInfo("no differences\n")
		return nil
	}
	printInfo("%s", text)
	return nil
}
