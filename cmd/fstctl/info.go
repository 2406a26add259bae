package main

import (
	"github.com/spf13/cobra"
	"github.com/wfstlib/wfst/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <fst>",
		Short: "Report basic metadata about a transducer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	path := args[0]

	t, err := loadTransducer(path, nil)
	if err != nil {
		return err
	}
	defer t.Close()

	numStates := t.NumStates()
	var numArcs, numFinal uint32
	for s := uint32(0); s < numStates; s++ {
		numArcs += t.NumArcs(s)
		if t.FinalWeight(s) != types.Zero {
			numFinal++
		}
	}

	if jsonOut {
		return printJSON(map[string]any{
			"path":        path,
			"num_states":  numStates,
			"num_arcs":    numArcs,
			"num_final":   numFinal,
			"start_state": t.Start(),
		})
	}

	printInfo("File: %s\n", path)
	printInfo("  States: %d\n", numStates)
	printInfo("  Arcs: %d\n", numArcs)
	printInfo("  Final states: %d\n", numFinal)
	printInfo("  Start state: %d\n", t.Start())
	return nil
}
