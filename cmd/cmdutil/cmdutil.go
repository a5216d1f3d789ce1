/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmdutil

import (
	"github.com/xiaomi388/kakeibo/pkg/config"
	"github.com/xiaomi388/kakeibo/pkg/persistence"
)

// Config is resolved by the root command before any subcommand runs.
var Config = config.Default()

func OpenBackend() (persistence.Backend, error) {
	return persistence.NewBackend(Config.Storage)
}

// DocumentStore returns the graph data instance when graph is set and the
// generic data instance otherwise.
func DocumentStore(backend persistence.Backend, graph bool) *persistence.Store[any] {
	if graph {
		return persistence.NewGraphDataStore(backend)
	}
	return persistence.NewDataStore(backend)
}
