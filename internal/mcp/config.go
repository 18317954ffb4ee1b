package mcp

import (
	"fmt"
	"log"

	"github.com/roivaz/voyp-mcp/internal/config"
	"github.com/roivaz/voyp-mcp/internal/logging"
	"github.com/roivaz/voyp-mcp/internal/mcp/tools"
	"github.com/roivaz/voyp-mcp/internal/voyp"
)

type Config struct {
	Dispatcher *tools.Dispatcher
	Logger     logging.Logger
	// ErrorLog receives transport-level errors from the stdio server.
	ErrorLog *log.Logger
}

// NewConfig wires the Voyp client and tool dispatcher from process config.
func NewConfig(cfg config.Config, logger logging.Logger) (Config, error) {
	client, err := voyp.NewClient(voyp.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.HTTPTimeout,
		Logger:  logger,
	})
	if err != nil {
		return Config{}, fmt.Errorf("create voyp client: %w", err)
	}

	return Config{
		Dispatcher: tools.NewDispatcher(client, logger),
		Logger:     logger,
	}, nil
}
