// Command fstinspect is an interactive terminal UI for browsing a weighted
// finite-state transducer's states and arcs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wfstlib/wfst/internal/fstlog"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if err := fstlog.Init(fstlog.Options{Enabled: debugMode, Level: slog.LevelDebug}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("fstinspect %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	fstlog.Info("starting fstinspect", "path", path, "debug", debugMode)

	if _, err := os.Stat(path); err != nil {
		fstlog.Error("transducer file not found", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
		os.Exit(1)
	}

	m, err := NewModel(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		fstlog.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		model.Close()
	}

	fstlog.Info("fstinspect exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: fstinspect [options] <fst-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'fstinspect --help' for more information.\n")
}

func printHelp() {
	fmt.Println("fstinspect - Interactive TUI for weighted finite-state transducers")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  fstinspect [options] <fst-file>")
	fmt.Println()
	fmt.Println("  Split-pane layout: state list on the left, the selected state's")
	fmt.Println("  out-arcs on the right.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Move selection")
	fmt.Println("    Tab         Switch between state list and arc table")
	fmt.Println("    /           Filter states by id or final weight")
	fmt.Println("    y           Copy the selected row to the clipboard")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.wfst/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'fstctl' command instead.")
}
