package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/voyp-mcp/internal/voyp"
)

type PlaceService interface {
	SearchPlaces(ctx context.Context, search string) (json.RawMessage, error)
	SearchPlace(ctx context.Context, req voyp.SearchPlaceRequest) (json.RawMessage, error)
	SearchPlaceByNumber(ctx context.Context, number string) (json.RawMessage, error)
}

type SearchPlacesHandler struct {
	Service PlaceService
}

func (h *SearchPlacesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	search, err := requireString(SearchPlaces, req.GetArguments(), "search")
	if err != nil {
		return nil, err
	}
	return upstreamResult(h.Service.SearchPlaces(ctx, search))
}

type SearchPlaceHandler struct {
	Service PlaceService
}

func (h *SearchPlaceHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	place, err := requireString(SearchPlace, args, "place")
	if err != nil {
		return nil, err
	}
	location, err := requireString(SearchPlace, args, "location")
	if err != nil {
		return nil, err
	}
	return upstreamResult(h.Service.SearchPlace(ctx, voyp.SearchPlaceRequest{Place: place, Location: location}))
}

type SearchPlaceByNumberHandler struct {
	Service PlaceService
}

func (h *SearchPlaceByNumberHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number, err := requireString(SearchPlaceByNumber, req.GetArguments(), "number")
	if err != nil {
		return nil, err
	}
	return upstreamResult(h.Service.SearchPlaceByNumber(ctx, number))
}
