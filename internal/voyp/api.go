package voyp

import (
	"context"
	"encoding/json"
	"net/url"
)

const (
	PathProfile      = "profile"
	PathStartCall    = "call/start"
	PathHangupCall   = "call/hangup"
	PathSearchPlaces = "places/search"
	PathSearchPlace  = "place/search"
)

// CallPath is the retrieval endpoint for one call.
func CallPath(id string) string {
	return "call/" + url.PathEscape(id)
}

// PlaceByNumberPath is the reverse lookup endpoint for a phone number.
func PlaceByNumberPath(number string) string {
	return "place/" + url.PathEscape(number)
}

type StartCallRequest struct {
	Number   string `json:"number"`
	Context  string `json:"context"`
	Language string `json:"language,omitempty"`
}

type HangupCallRequest struct {
	ID string `json:"id"`
}

type SearchPlacesRequest struct {
	Search string `json:"search"`
}

type SearchPlaceRequest struct {
	Place    string `json:"place"`
	Location string `json:"location"`
}

// StartCall places an outbound call. The response carries the call id and a
// tracking URL.
func (c *Client) StartCall(ctx context.Context, req StartCallRequest) (json.RawMessage, error) {
	return c.Post(ctx, PathStartCall, req)
}

func (c *Client) HangupCall(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Post(ctx, PathHangupCall, HangupCallRequest{ID: id})
}

func (c *Client) GetCall(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Get(ctx, CallPath(id))
}

func (c *Client) SearchPlaces(ctx context.Context, search string) (json.RawMessage, error) {
	return c.Post(ctx, PathSearchPlaces, SearchPlacesRequest{Search: search})
}

func (c *Client) SearchPlace(ctx context.Context, req SearchPlaceRequest) (json.RawMessage, error) {
	return c.Post(ctx, PathSearchPlace, req)
}

func (c *Client) SearchPlaceByNumber(ctx context.Context, number string) (json.RawMessage, error) {
	return c.Get(ctx, PlaceByNumberPath(number))
}

func (c *Client) GetUser(ctx context.Context) (json.RawMessage, error) {
	return c.Get(ctx, PathProfile)
}
