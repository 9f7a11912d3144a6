package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jjenkins/narou-reader/internal/handlers"
	"github.com/spf13/cobra"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the reader web server",
	Long:  `Start the web server that proxies and simplifies novel pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(port)
		if err != nil {
			return err
		}

		app := handlers.NewApp(newReader(cfg, logger), handlers.AppOptions{Logger: logger})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
				logger.Error("shutdown failed", "error", err)
			}
		}()

		logger.Info("starting server", "port", cfg.Port, "upstream", cfg.BaseURL, "request_delay", cfg.RequestDelay)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to run the server on (overrides PORT and config)")
}
