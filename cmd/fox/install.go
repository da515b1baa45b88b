package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sandfox-dev/foxchat/internal/config"
	"github.com/sandfox-dev/foxchat/pkg/log"
)

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Create the runtime directory and a .env template",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appCfg := config.NewAppConfig(ctx)
		if err := os.MkdirAll(appCfg.GetRuntimePath(), 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, appCfg.GetLogPath())
		defer flushLog()
		logger := log.FromCtx(ctx)

		envPath := appCfg.GetEnvPath()
		if _, err := os.Stat(envPath); err == nil {
			logger.Info().Str("path", envPath).Msg(".env already exists, leaving it alone")
			fmt.Printf("Runtime directory ready at %s\n", appCfg.GetRuntimePath())
			return nil
		}

		template := map[string]string{
			"GEMINI_API_KEY": "",
			"FOXCHAT_MODEL":  "gemini-2.5-flash",
		}
		if err := godotenv.Write(template, envPath); err != nil {
			return fmt.Errorf("failed to write %s: %w", envPath, err)
		}

		logger.Info().Str("path", envPath).Msg("wrote .env template")
		fmt.Printf("Runtime directory ready at %s\n", appCfg.GetRuntimePath())
		fmt.Printf("Put your Gemini API key into %s and run 'fox start'.\n", envPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
