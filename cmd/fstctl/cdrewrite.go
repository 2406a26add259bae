package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wfstlib/wfst/pkg/fst"
	"github.com/wfstlib/wfst/pkg/types"
)

// cdrewriteConfig is the on-disk rule-file format for the cdrewrite
// subcommand.
type cdrewriteConfig struct {
	Alphabet     []string `yaml:"alphabet"`
	From         string   `yaml:"from"`
	To           string   `yaml:"to"`
	LeftContext  []string `yaml:"left_context"`
	RightContext []string `yaml:"right_context"`
	Mode         string   `yaml:"mode"` // "obligatory" (default) or "optional"
}

var cdrewriteSymbols string

func init() {
	cmd := &cobra.Command{
		Use:   "cdrewrite <rule.yaml> <out>",
		Short: "Build a context-dependent rewrite transducer from a rule file",
		Long: `cdrewrite reads a YAML rule describing a from/to symbol pair, an
alphabet, and optional left/right context sets, and writes the resulting
transducer to <out>.

Rule file format:
  alphabet: ["a", "b", "x", "y"]
  from: "a"
  to: "b"
  left_context: ["x"]
  right_context: ["y"]
  mode: obligatory`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCDRewrite(args)
		},
	}
	cmd.Flags().StringVar(&cdrewriteSymbols, "symbols", "", "symbol table file (created if missing)")
	rootCmd.AddCommand(cmd)
}

func runCDRewrite(args []string) error {
	syms, err := loadSymbolTable(cdrewriteSymbols)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	var cfg cdrewriteConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	alphabet := internTokens(syms, cfg.Alphabet)

	mode := types.CDRewriteObligatory
	if cfg.Mode == "optional" {
		mode = types.CDRewriteOptional
	}

	var leftContext, rightContext []types.Label
	if cfg.LeftContext != nil {
		leftContext = internTokens(syms, cfg.LeftContext)
	}
	if cfg.RightContext != nil {
		rightContext = internTokens(syms, cfg.RightContext)
	}

	rule := fst.CDRule{
		From:         syms.AddSymbol(cfg.From),
		To:           syms.AddSymbol(cfg.To),
		LeftContext:  leftContext,
		RightContext: rightContext,
	}

	result := fst.CDRewrite(alphabet, rule, mode)
	defer result.Close()

	if err := saveTransducer(result, args[1], syms); err != nil {
		return fmt.Errorf("save %s: %w", args[1], err)
	}
	if cdrewriteSymbols != "" {
		if err := writeSymbolTable(syms, cdrewriteSymbols); err != nil {
			return err
		}
	}
	printVerbose("cdrewrite: %d states -> %s\n", result.NumStates(), args[1])
	return nil
}
