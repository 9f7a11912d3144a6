package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jjenkins/narou-reader/internal/config"
	"github.com/jjenkins/narou-reader/internal/service"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "narou",
	Short: "Lightweight reader for Shosetsuka ni Narou",
	Long: `narou serves a stripped-down, script-free rendition of the
"小説家になろう" novel site for low-capability browsers.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config and installs the default logger
func loadConfig(port string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(config.Options{
		ConfigPath: flagConfig,
		Port:       port,
		LogLevel:   flagLogLevel,
	})
	if err != nil {
		return nil, nil, err
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// newReader wires the upstream client and parser into a Reader
func newReader(cfg *config.Config, logger *slog.Logger) *service.Reader {
	client := service.NewSyosetuClient(cfg.ClientOptions(logger))
	parser := service.NewParser()
	return service.NewReader(client, parser, cfg.BaseURL, cfg.SearchURL, logger)
}
