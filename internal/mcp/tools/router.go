package tools

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/voyp-mcp/internal/logging"
)

type Adapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Gateway is the upstream surface the tools need. *voyp.Client implements it.
type Gateway interface {
	CallService
	PlaceService
	ProfileService
}

// Dispatcher routes tool calls by name to their adapters.
type Dispatcher struct {
	calls   CallService
	places  PlaceService
	profile ProfileService
	log     logging.Logger
}

func NewDispatcher(gw Gateway, log logging.Logger) *Dispatcher {
	return &Dispatcher{
		calls:   gw,
		places:  gw,
		profile: gw,
		log:     log.WithName("tools"),
	}
}

// Adapter returns the adapter serving name.
func (d *Dispatcher) Adapter(name Name) Adapter {
	switch name {
	case StartCall:
		return &StartCallHandler{Service: d.calls}
	case HangupCall:
		return &HangupCallHandler{Service: d.calls}
	case GetCall:
		return &GetCallHandler{Service: d.calls}
	case SearchPlaces:
		return &SearchPlacesHandler{Service: d.places}
	case SearchPlace:
		return &SearchPlaceHandler{Service: d.places}
	case SearchPlaceByNumber:
		return &SearchPlaceByNumberHandler{Service: d.places}
	case GetUser:
		return &GetUserHandler{Service: d.profile}
	}
	return nil
}

// Call is a server.ToolHandlerFunc serving every catalog tool.
func (d *Dispatcher) Call(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := ParseName(req.Params.Name)
	if err != nil {
		d.log.Error(err, "rejected tool call", "tool", req.Params.Name)
		return nil, err
	}

	log := d.log.WithValues("tool", string(name), "invocation", uuid.NewString())
	log.Debug("tool call started")
	start := time.Now()

	result, err := d.Adapter(name).ToolAdapter(ctx, req)
	switch {
	case err != nil:
		log.Error(err, "tool call failed", "code", ErrorCode(err), "elapsed", time.Since(start))
	case result.IsError:
		log.Info("upstream rejected tool call", "elapsed", time.Since(start))
	default:
		log.Debug("tool call completed", "elapsed", time.Since(start))
	}
	return result, err
}

// CallTool invokes a tool outside of an MCP session.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return d.Call(ctx, req)
}
