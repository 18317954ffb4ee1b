package tools

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/voyp-mcp/internal/voyp"
)

const apiErrorPrefix = "Voyp API error: "

func requireString(tool Name, args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", &InvalidParamsError{Tool: tool, Argument: key, Reason: "is required"}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &InvalidParamsError{Tool: tool, Argument: key, Reason: "must be a string"}
	}
	if strings.TrimSpace(value) == "" {
		return "", &InvalidParamsError{Tool: tool, Argument: key, Reason: "must not be empty"}
	}
	return value, nil
}

func optionalString(tool Name, args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", &InvalidParamsError{Tool: tool, Argument: key, Reason: "must be a string"}
	}
	return value, nil
}

// upstreamResult turns a gateway reply into a tool result. Upstream failures
// become error results so the client can show them; anything else is returned
// as a protocol error.
func upstreamResult(body json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		if voyp.IsAPIError(err) {
			return mcp.NewToolResultError(apiErrorPrefix + voyp.ErrorMessage(err)), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(string(body)), nil
}
