package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/wfstlib/wfst/pkg/fst"
)

// loadTransducer reads path as binary when it ends in .bin and as text
// otherwise.
func loadTransducer(path string, syms *fst.SymbolTable) (*fst.Transducer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".bin") {
		return fst.Load(f)
	}
	return fst.ReadText(f, syms)
}

// saveTransducer writes t to path as binary (.bin) or text, inferred from
// extension.
func saveTransducer(t *fst.Transducer, path string, syms *fst.SymbolTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".bin") {
		return t.Save(f)
	}
	return t.WriteText(f, syms)
}

// loadSymbolTable reads a symbol table from path, or returns a fresh one if
// path is empty.
func loadSymbolTable(path string) (*fst.SymbolTable, error) {
	if path == "" {
		return fst.NewSymbolTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return fst.LoadSymbolTable(f)
}

// writeSymbolTable writes syms to path.
func writeSymbolTable(syms *fst.SymbolTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return fst.SaveSymbolTable(f, syms)
}
