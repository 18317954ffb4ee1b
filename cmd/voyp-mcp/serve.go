package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roivaz/voyp-mcp/internal/logging"
	"github.com/roivaz/voyp-mcp/internal/mcp"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, z, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = z.Sync() }()

	srvCfg, err := mcp.NewConfig(cfg, logging.FromZap(z))
	if err != nil {
		return err
	}
	srvCfg.ErrorLog = logging.StdLogger(z, "stdio")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcp.New(srvCfg).Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
