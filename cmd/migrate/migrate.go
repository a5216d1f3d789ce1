/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/kakeibo/pkg/persistence"
)

var (
	fromBackend string
	toBackend   string
	sourcePath  string
	destPath    string
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "copy every document between storage backends",
	Long:  `Migrate all documents from one storage backend to another (e.g. json to sqlite).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	MigrateCmd.Flags().StringVar(&fromBackend, "from", "json", "source backend (json, sqlite or leveldb)")
	MigrateCmd.Flags().StringVar(&toBackend, "to", "sqlite", "destination backend (json, sqlite or leveldb)")
	MigrateCmd.Flags().StringVar(&sourcePath, "source", "", "source path (defaults based on backend)")
	MigrateCmd.Flags().StringVar(&destPath, "dest", "", "destination path (defaults based on backend)")
}

func runMigrate(cmd *cobra.Command) error {
	if fromBackend == toBackend && sourcePath == destPath {
		return fmt.Errorf("source and destination are the same: %s", fromBackend)
	}

	src, err := persistence.NewBackendWithName(fromBackend, sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source store: %w", err)
	}
	defer src.Close()

	dst, err := persistence.NewBackendWithName(toBackend, destPath)
	if err != nil {
		return fmt.Errorf("failed to open destination store: %w", err)
	}
	defer dst.Close()

	n, err := persistence.Copy(dst, src)
	if err != nil {
		return fmt.Errorf("failed to migrate documents: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully migrated %d document(s) from %s to %s.\n", n, fromBackend, toBackend)
	fmt.Fprintln(out, "Update your config.yaml to use the new backend:")
	fmt.Fprintln(out, "  storage:")
	fmt.Fprintf(out, "    backend: %s\n", toBackend)
	if destPath != "" {
		fmt.Fprintf(out, "    path: %s\n", destPath)
	}
	return nil
}
