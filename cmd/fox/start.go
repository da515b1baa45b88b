package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandfox-dev/foxchat/internal/config"
	"github.com/sandfox-dev/foxchat/pkg/log"
	"github.com/sandfox-dev/foxchat/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the FoxChat terminal UI",
	Long:  `Opens the chat window, the local history database and the Gemini session.`,
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	appCfg := config.NewAppConfig(ctx)
	if err := os.MkdirAll(appCfg.GetRuntimePath(), 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	// Log to a file; stdout and stderr belong to the terminal UI
	var flushLog func()
	ctx, flushLog = setupLogger(ctx, appCfg.GetLogPath())
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Info().Msg("starting foxchat")

	services := NewServices(ctx, appCfg, stop)

	srv.StartServices(ctx, services)

	// Blocks until the UI quits or a signal arrives
	srv.ShutdownServices(ctx, services)
	logger.Info().Msg("foxchat has been shut down gracefully")

	return nil
}
