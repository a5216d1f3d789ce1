/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xiaomi388/kakeibo/cmd/cmdutil"
	"github.com/xiaomi388/kakeibo/cmd/entry"
	"github.com/xiaomi388/kakeibo/cmd/load"
	"github.com/xiaomi388/kakeibo/cmd/migrate"
	"github.com/xiaomi388/kakeibo/cmd/save"
	"github.com/xiaomi388/kakeibo/cmd/summary"
	"github.com/xiaomi388/kakeibo/pkg/config"
)

var (
	backend  string
	path     string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kakeibo",
	Short: "Household ledger backed by plain JSON documents",
	Long: `kakeibo keeps a household ledger and its chart breakdown as JSON
documents (data.json and graphData.json) in a directory, a SQLite
database or a LevelDB database.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Storage.Backend = backend
	}
	if flags.Changed("path") {
		cfg.Storage.Path = path
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	cmdutil.Config = cfg
	logrus.WithFields(logrus.Fields{
		"backend": cfg.Storage.Backend,
		"path":    cfg.Storage.Path,
	}).Debug("configuration loaded")
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config", config.DefaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", config.BackendJSON, "storage backend (json, sqlite or leveldb)")
	rootCmd.PersistentFlags().StringVar(&path, "path", "", "storage directory or database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(save.SaveCmd)
	rootCmd.AddCommand(load.LoadCmd)
	rootCmd.AddCommand(entry.AddCmd)
	rootCmd.AddCommand(entry.RemoveCmd)
	rootCmd.AddCommand(entry.MoveCmd)
	rootCmd.AddCommand(entry.ResetCmd)
	rootCmd.AddCommand(summary.SummaryCmd)
	rootCmd.AddCommand(migrate.MigrateCmd)
}
