package main

import (
	"fmt"
	"io"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/keyglass/keyglass/internal/style"
	"github.com/keyglass/keyglass/internal/tui"
	"github.com/spf13/cobra"
)

// runTUI loads the binding set, then hands it to the interactive table.
// The load completes before the first paint; the terminal program
// failing to start is the only fatal error class.
func runTUI(cmd *cobra.Command, _, stderr io.Writer) error {
	sp := style.StartSpinner(stderr, "Reading keybindings...")
	rows, err := loadBindings(cmd.Context())
	sp.Stop()
	if err != nil {
		return err
	}

	m := tui.New(rows)
	p := bubbletea.NewProgram(m, bubbletea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("starting terminal UI: %w", err)
	}
	return nil
}
