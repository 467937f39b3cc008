package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/keyglass/keyglass/internal/bindings"
	"github.com/keyglass/keyglass/internal/style"
	"github.com/spf13/cobra"
)

func newListCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		filter  string
		sortBy  string
		desc    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the configured keybindings to stdout",
		Args:  cobra.NoArgs,
		Long: `Print the configured keybindings as a plain table.

EXAMPLES:
  keyglass list                      # Every binding, load order
  keyglass list --filter workspace   # Substring match on any column
  keyglass list --sort binding       # Sort by accelerator
  keyglass list --sort label --desc  # Descending label sort
  keyglass list --json               # JSON output`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, stdout, filter, sortBy, desc, jsonOut)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Show only rows containing this substring (case-insensitive)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort column: label, binding, schema, key")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	_ = cmd.RegisterFlagCompletionFunc("sort", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return bindings.ColumnNames[:], cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, stdout io.Writer, filter, sortBy string, desc, jsonOut bool) error {
	col := -1
	if sortBy != "" {
		var ok bool
		col, ok = bindings.ColumnIndex(sortBy)
		if !ok {
			return fmt.Errorf("invalid --sort value %q: must be label, binding, schema, or key", sortBy)
		}
	}

	rows, err := loadBindings(cmd.Context())
	if err != nil {
		return err
	}

	rows = bindings.Filter(rows, filter)
	if col >= 0 {
		bindings.Sort(rows, col, desc)
	}

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false) // keep <Super> readable
		return enc.Encode(rows)
	}

	printBindings(stdout, rows)
	return nil
}

func printBindings(stdout io.Writer, rows []bindings.Binding) {
	if len(rows) == 0 {
		fmt.Fprintln(stdout, style.Dim.Render("No keybindings found."))
		return
	}

	tbl := style.NewTable(
		style.Column{Name: "LABEL", Width: 32},
		style.Column{Name: "BINDING", Width: 28},
		style.Column{Name: "SCHEMA", Width: 44},
		style.Column{Name: "KEY", Width: 28},
	)
	for _, r := range rows {
		tbl.AddRow(r.Label, r.Accelerator, r.Schema, r.Key)
	}
	fmt.Fprint(stdout, tbl.Render())
	fmt.Fprintln(stdout, style.Dim.Render(fmt.Sprintf("  %d bindings", len(rows))))
}
