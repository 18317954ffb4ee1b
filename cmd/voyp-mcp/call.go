package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/roivaz/voyp-mcp/internal/logging"
	voypmcp "github.com/roivaz/voyp-mcp/internal/mcp"
	"github.com/roivaz/voyp-mcp/internal/mcp/tools"
	"github.com/roivaz/voyp-mcp/internal/voyp"
)

var errToolResult = errors.New("tool returned an error result")

func newCallCommand() *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke a single tool and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var toolArgs map[string]any
			if err := json.Unmarshal([]byte(rawArgs), &toolArgs); err != nil {
				return fmt.Errorf("parse --args: %w", err)
			}

			cfg, z, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = z.Sync() }()

			srvCfg, err := voypmcp.NewConfig(cfg, logging.FromZap(z))
			if err != nil {
				return err
			}

			result, err := srvCfg.Dispatcher.CallTool(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}
			text := resultText(result)
			fmt.Fprintln(cmd.OutOrStdout(), text)
			if result.IsError {
				return errToolResult
			}
			return voyp.CheckCallRecord(recordPath(tools.Name(args[0])), json.RawMessage(text))
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "{}", "Tool arguments as a JSON object")
	return cmd
}

// recordPath is the upstream path whose call record a tool returns, if any.
func recordPath(name tools.Name) string {
	switch name {
	case tools.StartCall:
		return voyp.PathStartCall
	case tools.HangupCall:
		return voyp.PathHangupCall
	}
	return ""
}

func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
