package tools

import "github.com/mark3labs/mcp-go/mcp"

// Catalog returns the tool definitions in catalog order. The result is rebuilt
// on every call so callers cannot mutate a shared copy.
func Catalog() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(string(StartCall),
			mcp.WithDescription("Start a new phone call via Voyp API. The API returns the call id and a URL where users can track the progress of the call"),
			mcp.WithString("number",
				mcp.Required(),
				mcp.Description("Phone number to call in E.164 format"),
			),
			mcp.WithString("language",
				mcp.Description("Language of the call. Ex: en-US, pt-PT, fr-FR"),
			),
			mcp.WithString("context",
				mcp.Required(),
				mcp.Description("Context of the call. Ex: Order a pizza"),
			),
		),
		mcp.NewTool(string(HangupCall),
			mcp.WithDescription("Hangup an existing call"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("ID of the call"),
			),
		),
		mcp.NewTool(string(SearchPlaces),
			mcp.WithDescription("Search places in a given location"),
			mcp.WithString("search",
				mcp.Required(),
				mcp.Description("Places to search. Ex: italian restaurants in New York City, US"),
			),
		),
		mcp.NewTool(string(SearchPlace),
			mcp.WithDescription("Search place details in a given location"),
			mcp.WithString("place",
				mcp.Required(),
				mcp.Description("Name of place to search. Ex: The Lane Salon"),
			),
			mcp.WithString("location",
				mcp.Required(),
				mcp.Description("Place location. Ex: San Francisco, CA"),
			),
		),
		mcp.NewTool(string(SearchPlaceByNumber),
			mcp.WithDescription("Find place name and address by phone number"),
			mcp.WithString("number",
				mcp.Required(),
				mcp.Description("Phone number in E.164 format. Ex: +1234567890"),
			),
		),
		mcp.NewTool(string(GetCall),
			mcp.WithDescription("Retrieve call details"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Call Id"),
			),
		),
		mcp.NewTool(string(GetUser),
			mcp.WithDescription("Retrieve user profile"),
		),
	}
}
