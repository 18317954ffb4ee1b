package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

type ProfileService interface {
	GetUser(ctx context.Context) (json.RawMessage, error)
}

type GetUserHandler struct {
	Service ProfileService
}

func (h *GetUserHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return upstreamResult(h.Service.GetUser(ctx))
}
