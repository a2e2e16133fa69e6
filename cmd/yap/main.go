package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	rootCmd, rootOpts := newRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if rootOpts.UserLogger != nil {
			rootOpts.UserLogger.LogValidation(false, "Command failed", err)
		}
		os.Exit(1)
	}
}
