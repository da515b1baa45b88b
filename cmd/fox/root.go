package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandfox-dev/foxchat/internal/config"
	"github.com/sandfox-dev/foxchat/internal/core"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     "fox",
	Short:   core.FoxName + " - a Gemini chat client for the terminal",
	Long:    core.FoxName + ` is a desktop chat client for Google Gemini with local history, persistent facts and mode-based dispatch.`,
	Version: core.FoxVersion,
	// Running the binary with no subcommand opens the chat
	RunE: runStart,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context, path string) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug, path)
}
