package main

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/voyp-mcp/internal/mcp/prompts"
	"github.com/roivaz/voyp-mcp/internal/mcp/tools"
)

type catalogDocument struct {
	Tools   []mcp.Tool   `json:"tools"`
	Prompts []mcp.Prompt `json:"prompts"`
}

func newCatalogCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the tool and prompt catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := renderCatalog(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml or json)")
	return cmd
}

func renderCatalog(format string) ([]byte, error) {
	doc := catalogDocument{
		Tools:   tools.Catalog(),
		Prompts: prompts.Definitions(),
	}

	switch format {
	case "yaml":
		return yaml.Marshal(doc)
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
