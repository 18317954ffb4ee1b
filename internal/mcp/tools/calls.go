package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/voyp-mcp/internal/voyp"
)

type CallService interface {
	StartCall(ctx context.Context, req voyp.StartCallRequest) (json.RawMessage, error)
	HangupCall(ctx context.Context, id string) (json.RawMessage, error)
	GetCall(ctx context.Context, id string) (json.RawMessage, error)
}

type StartCallHandler struct {
	Service CallService
}

func (h *StartCallHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	number, err := requireString(StartCall, args, "number")
	if err != nil {
		return nil, err
	}
	callContext, err := requireString(StartCall, args, "context")
	if err != nil {
		return nil, err
	}
	language, err := optionalString(StartCall, args, "language")
	if err != nil {
		return nil, err
	}
	return upstreamResult(h.Service.StartCall(ctx, voyp.StartCallRequest{
		Number:   number,
		Context:  callContext,
		Language: language,
	}))
}

type HangupCallHandler struct {
	Service CallService
}

func (h *HangupCallHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(HangupCall, req.GetArguments(), "id")
	if err != nil {
		return nil, err
	}
	return upstreamResult(h.Service.HangupCall(ctx, id))
}

type GetCallHandler struct {
	Service CallService
}

func (h *GetCallHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(GetCall, req.GetArguments(), "id")
	if err != nil {
		return nil, err
	}
	return upstreamResult(h.Service.GetCall(ctx, id))
}
