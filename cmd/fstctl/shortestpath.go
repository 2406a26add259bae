package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wfstlib/wfst/pkg/types"
)

var (
	shortestPathN      int
	shortestPathUnique bool
	shortestPathSyms   string
)

func init() {
	cmd := &cobra.Command{
		Use:   "shortestpath <fst>",
		Short: "Extract the N lowest-weight accepting paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortestPath(args)
		},
	}
	cmd.Flags().IntVarP(&shortestPathN, "n", "n", 1, "number of best paths to extract")
	cmd.Flags().
		BoolVar(&shortestPathUnique, "unique", false, "suppress duplicate (input, output) strings")
	cmd.Flags().StringVar(&shortestPathSyms, "symbols", "", "symbol table file")
	rootCmd.AddCommand(cmd)
}

func runShortestPath(args []string) error {
	syms, err := loadSymbolTable(shortestPathSyms)
	if err != nil {
		return err
	}
	t, err := loadTransducer(args[0], syms)
	if err != nil {
		return err
	}
	defer t.Close()

	paths, err := t.NBestPaths(types.ShortestPathOptions{N: shortestPathN, Unique: shortestPathUnique})
	if err != nil {
		return fmt.Errorf("shortestpath: %w", err)
	}

	if jsonOut {
		type row struct {
			Input  []string `json:"input"`
			Output []string `json:"output"`
			Weight float64  `json:"weight"`
		}
		rows := make([]row, len(paths))
		for i, p := range paths {
			rows[i] = row{
				Input:  labelsToTokens(syms, p.ILabels),
				Output: labelsToTokens(syms, p.OLabels),
				Weight: p.Weight,
			}
		}
		return printJSON(rows)
	}

	for i, p := range paths {
		printInfo(
			"%d: in=%s out=%s weight=%g\n",
			i,
			strings.Join(labelsToTokens(syms, p.ILabels), " "),
			strings.Join(labelsToTokens(syms, p.OLabels), " "),
			p.Weight,
		)
	}
	return nil
}
