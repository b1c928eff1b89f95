package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"snapdeck/internal/config"
	"snapdeck/internal/telemetry"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logFile    string
}

func main() {
	flags := &rootFlags{}
	var shutdown telemetry.ShutdownFunc

	rootCmd := &cobra.Command{
		Use:   "snapdeck",
		Short: "Take screenshots and screen recordings from the terminal",
		Long: `snapdeck captures a region, the active window or the full screen, either
as a PNG screenshot or as an MP4 recording.

Run without a subcommand to open the capture window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			shutdown, err = telemetry.Setup(cmd.Context())
			if err != nil {
				log.Printf("main: telemetry disabled: %v", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if shutdown != nil {
				return shutdown(context.Background())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), flags)
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $SNAPDECK_CONFIG or <user config dir>/snapdeck/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to this file (default $SNAPDECK_LOG_FILE)")

	rootCmd.AddCommand(newUICmd(flags))
	rootCmd.AddCommand(newShotCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and applies the shared flags.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{Path: flags.configPath})
	if err != nil {
		return nil, err
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	return cfg, nil
}
