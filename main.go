// Package main is the entrypoint for the gitpulse CLI.
package main

import (
	"github.com/gitpulse/gitpulse/cmd"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}

	// LogFatal exits the process, so stores are closed ahead of it.
	iocache.CloseStores()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
