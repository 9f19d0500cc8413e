package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/user/scanreport/pkg/config"
	"github.com/user/scanreport/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "scanreport",
	Short: "Aggregate scanner findings into a deduplicated, localized report",
	Long: `scanreport collects the task results of many independent scanning modules,
deduplicates and ranks the findings they describe, and renders them as a single
localized report (HTML e-mail body or JSON).`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

var (
	DebugMode  bool
	logLevel   string
	logJSON    bool
	logFile    string
	configPath string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides log_level from the config file)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append logs to this file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.scanreport/config.yaml, or $"+config.EnvConfigPath+")")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		if err := os.Setenv(config.EnvConfigPath, configPath); err != nil {
			return err
		}
	}
	level := logLevel
	if level == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			level = cfg.LogLevel
		}
	}
	return logger.Setup(logger.Options{
		Level:    level,
		Debug:    DebugMode,
		JSON:     logJSON,
		FilePath: logFile,
	})
}
