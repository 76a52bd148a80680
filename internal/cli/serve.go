package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clientapi/internal/app"
	"clientapi/internal/config"
)

var (
	configPath string
	port       int
)

var serveCmd = &cobra.Command{
	Use:   CmdServe,
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server and block until SIGINT or SIGTERM.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file path")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides server.port)")

	rootCmd.AddCommand(serveCmd)
}

// loadServeConfig applies command line overrides on top of the config file.
func loadServeConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if port != 0 {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}
	log.Printf("[INFO] Starting clientapi with config_path=%s port=%d", configPath, cfg.Server.Port)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg)
}
