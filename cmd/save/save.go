/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package save

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/kakeibo/cmd/cmdutil"
)

var (
	graph    bool
	fromFile string
)

// SaveCmd stores a JSON document read from stdin or --file.
var SaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "save a JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runSave(cmd, name)
	},
}

func init() {
	SaveCmd.Flags().BoolVar(&graph, "graph", false, "use the graph data document instead of the generic one")
	SaveCmd.Flags().StringVarP(&fromFile, "file", "f", "", "read the document from this file instead of stdin")
}

func runSave(cmd *cobra.Command, name string) error {
	var r io.Reader = cmd.InOrStdin()
	if fromFile != "" {
		f, err := os.Open(fromFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", fromFile, err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("input is not valid json: %w", err)
	}

	backend, err := cmdutil.OpenBackend()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer backend.Close()

	store := cmdutil.DocumentStore(backend, graph)
	if err := store.SaveAs(name, value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", store.Location(name))
	return nil
}
