package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wfstlib/wfst/pkg/fst"
	"github.com/wfstlib/wfst/pkg/types"
)

func init() {
	rootCmd.AddCommand(
		newUnaryCmd("rmepsilon", "Remove epsilon arcs", func(t *fst.Transducer) (*fst.Transducer, error) {
			return t.RmEpsilon()
		}),
		newUnaryCmd("determinize", "Determinize via weighted subset construction", func(t *fst.Transducer) (*fst.Transducer, error) {
			return t.Determinize(types.DefaultDeterminizeOptions())
		}),
		newUnaryCmd("minimize", "Minimize a deterministic, epsilon-free transducer", func(t *fst.Transducer) (*fst.Transducer, error) {
			return t.Minimize()
		}),
		newUnaryCmd("optimize", "Run rmepsilon, determinize, and minimize as a pipeline", func(t *fst.Transducer) (*fst.Transducer, error) {
			return t.Optimize(types.DefaultLimits())
		}),
		newUnaryCmd("invert", "Swap input and output labels, in place", func(t *fst.Transducer) (*fst.Transducer, error) {
			return t, t.Invert()
		}),
	)
}

// newUnaryCmd builds a "<op> <in> <out>" subcommand around a single-argument
// transform.
func newUnaryCmd(use, short string, fn func(*fst.Transducer) (*fst.Transducer, error)) *cobra.Command {
	var symbolsPath string
	cmd := &cobra.Command{
		Use:   use + " <in> <out>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			syms, err := loadSymbolTable(symbolsPath)
			if err != nil {
				return err
			}
			t, err := loadTransducer(args[0], syms)
			if err != nil {
				return err
			}
			defer t.Close()

			result, err := fn(t)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			if result != t {
				defer result.Close()
			}

			if err := saveTransducer(result, args[1], syms); err != nil {
				return fmt.Errorf("save %s: %w", args[1], err)
			}
			printVerbose("%s: %d states -> %s\n", use, result.NumStates(), args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&symbolsPath, "symbols", "", "symbol table file")
	return cmd
}
