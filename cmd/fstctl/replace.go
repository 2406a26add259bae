package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wfstlib/wfst/pkg/fst"
)

// replaceConfig is the on-disk rule-file format for the replace subcommand.
type replaceConfig struct {
	RootNonterminal string `yaml:"root_nonterminal"`
	MaxDepth        int    `yaml:"max_depth"`
	Rules           []struct {
		Nonterminal string `yaml:"nonterminal"`
		Fragment    string `yaml:"fragment"`
	} `yaml:"rules"`
}

var replaceSymbols string

func init() {
	cmd := &cobra.Command{
		Use:   "replace <root-fst> <rules.yaml> <out>",
		Short: "Expand nonterminal arcs in a transducer by rule-file fragments",
		Long: `replace reads a YAML rule file naming the root nonterminal and one
fragment transducer per nonterminal, and non-recursively expands every
occurrence in <root-fst> (and transitively within each fragment).

Rule file format:
  root_nonterminal: "$S"
  max_depth: 100
  rules:
    - nonterminal: "$NP"
      fragment: np.fst
    - nonterminal: "$VP"
      fragment: vp.fst`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args)
		},
	}
	cmd.Flags().StringVar(&replaceSymbols, "symbols", "", "symbol table file")
	rootCmd.AddCommand(cmd)
}

func runReplace(args []string) error {
	syms, err := loadSymbolTable(replaceSymbols)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[1], err)
	}
	var cfg replaceConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", args[1], err)
	}

	root, err := loadTransducer(args[0], syms)
	if err != nil {
		return err
	}
	defer root.Close()

	rules := make([]fst.Rule, len(cfg.Rules))
	for i, r := range cfg.Rules {
		frag, err := loadTransducer(r.Fragment, syms)
		if err != nil {
			return fmt.Errorf("load fragment %s: %w", r.Fragment, err)
		}
		defer frag.Close()
		rules[i] = fst.Rule{Nonterminal: syms.AddSymbol(r.Nonterminal), Fragment: frag}
	}

	result, err := root.Replace(syms.AddSymbol(cfg.RootNonterminal), rules, cfg.MaxDepth)
	if err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	defer result.Close()

	if err := saveTransducer(result, args[2], syms); err != nil {
		return fmt.Errorf("save %s: %w", args[2], err)
	}
	printVerbose("replace: %d states -> %s\n", result.NumStates(), args[2])
	return nil
}
