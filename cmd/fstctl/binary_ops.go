package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wfstlib/wfst/pkg/fst"
	"github.com/wfstlib/wfst/pkg/types"
)

func init() {
	rootCmd.AddCommand(
		newBinaryCmd("compose", "Compose two transducers", func(a, b *fst.Transducer) (*fst.Transducer, error) {
			return a.Compose(b)
		}),
		newBinaryCmd("difference", "Subtract an acceptor's language from a transducer's input language", func(a, b *fst.Transducer) (*fst.Transducer, error) {
			return a.Difference(b, types.DefaultLimits())
		}),
		newBinaryCmd("union", "Union two transducers, mutating the first", func(a, b *fst.Transducer) (*fst.Transducer, error) {
			return a, a.Union(b)
		}),
		newBinaryCmd("concat", "Concatenate two transducers, mutating the first", func(a, b *fst.Transducer) (*fst.Transducer, error) {
			return a, a.Concat(b)
		}),
	)
}

func newBinaryCmd(use, short string, fn func(a, b *fst.Transducer) (*fst.Transducer, error)) *cobra.Command {
	var symbolsPath string
	cmd := &cobra.Command{
		Use:   use + " <a> <b> <out>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			syms, err := loadSymbolTable(symbolsPath)
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

			result, err := fn(a, b)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			if result != a {
				defer result.Close()
			}

			if err := saveTransducer(result, args[2], syms); err != nil {
				return fmt.Errorf("save %s: %w", args[2], err)
			}
			printVerbose("%s: %d states -> %s\n", use, result.NumStates(), args[2])
			return nil
		},
	}
	cmd.Flags().StringVar(&symbolsPath, "symbols", "", "symbol table file")
	return cmd
}
