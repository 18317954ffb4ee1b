// Package prompts serves the scripted conversations offered to MCP clients.
package prompts

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	StartCall  = "start-call"
	HangupCall = "hangup-call"
)

// unknownValue fills in arguments the client did not send.
const unknownValue = "Unknown"

var ErrUnknownPrompt = errors.New("prompt not found")

// Definitions returns both prompt definitions in catalog order.
func Definitions() []mcp.Prompt {
	return []mcp.Prompt{
		mcp.NewPrompt(StartCall,
			mcp.WithPromptDescription("Start a new call"),
			mcp.WithArgument("number",
				mcp.ArgumentDescription("Number to call"),
				mcp.RequiredArgument(),
			),
			mcp.WithArgument("context",
				mcp.ArgumentDescription("The full context of the call"),
				mcp.RequiredArgument(),
			),
		),
		mcp.NewPrompt(HangupCall,
			mcp.WithPromptDescription("Hangup an existing call"),
			mcp.WithArgument("id",
				mcp.ArgumentDescription("Id of the call"),
				mcp.RequiredArgument(),
			),
		),
	}
}

// Get expands the named prompt with args. ErrUnknownPrompt is only seen by
// direct callers: the MCP server rejects unregistered prompt names itself
// before Handler runs.
func Get(name string, args map[string]string) (*mcp.GetPromptResult, error) {
	switch name {
	case StartCall:
		number := argOrUnknown(args, "number")
		callContext := argOrUnknown(args, "context")
		return mcp.NewGetPromptResult("Start a new call", []mcp.PromptMessage{
			userText("help me make a phone call"),
			assistantText("sure, what number would you like to call?"),
			userText("call this number " + number),
			assistantText("what is the context of the call?"),
			userText("here is what I'd like you to do: " + callContext),
		}), nil
	case HangupCall:
		id := argOrUnknown(args, "id")
		return mcp.NewGetPromptResult("Hangup an existing call", []mcp.PromptMessage{
			userText("Hangup call with id: " + id),
		}), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
}

// Handler is a server.PromptHandlerFunc for every prompt in Definitions.
func Handler(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return Get(req.Params.Name, req.Params.Arguments)
}

func argOrUnknown(args map[string]string, key string) string {
	if v := args[key]; v != "" {
		return v
	}
	return unknownValue
}

func userText(text string) mcp.PromptMessage {
	return mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text))
}

func assistantText(text string) mcp.PromptMessage {
	return mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(text))
}
