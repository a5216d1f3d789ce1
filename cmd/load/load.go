/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package load

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaomi388/kakeibo/cmd/cmdutil"
)

var graph bool

// LoadCmd prints a stored JSON document.
var LoadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "print a stored JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runLoad(cmd, name)
	},
}

func init() {
	LoadCmd.Flags().BoolVar(&graph, "graph", false, "use the graph data document instead of the generic one")
}

func runLoad(cmd *cobra.Command, name string) error {
	backend, err := cmdutil.OpenBackend()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer backend.Close()

	store := cmdutil.DocumentStore(backend, graph)
	value, found, err := store.LoadFrom(name)
	if err != nil {
		return err
	}
	if !found {
		logrus.WithField("path", store.Location(name)).Info("no data stored")
		return nil
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
