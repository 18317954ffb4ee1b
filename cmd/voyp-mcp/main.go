package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roivaz/voyp-mcp/internal/config"
	"github.com/roivaz/voyp-mcp/internal/logging"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("voyp-mcp: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "voyp-mcp",
		Short:        "Voyp MCP server over stdio",
		SilenceUsage: true,
		RunE:         runServe,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			config.LoadEnvFile()
			return nil
		},
	}

	root.PersistentFlags().String("voyp-api-key", "", "Voyp API key (defaults to $VOYP_API_KEY)")
	root.PersistentFlags().String("voyp-base-url", "", "Voyp API base URL")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("http-timeout", "", "Upstream request timeout, e.g. 30s (default none)")
	root.PersistentFlags().String("env-file", "", "Dotenv file loaded before reading configuration")

	root.AddCommand(newServeCommand(), newCatalogCommand(), newCallCommand())

	config.Init(root)
	return root
}

// bootstrap resolves configuration and builds the stderr logger.
func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	z, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, z, nil
}
