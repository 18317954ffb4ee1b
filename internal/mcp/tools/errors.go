package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrInvalidParams = errors.New("invalid params")
)

// UnknownToolError is returned for a tool name outside the catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

func (e *UnknownToolError) Code() int { return mcp.METHOD_NOT_FOUND }

// InvalidParamsError is returned when a required argument is missing or has
// the wrong type. No upstream request is made in that case.
type InvalidParamsError struct {
	Tool     Name
	Argument string
	Reason   string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("Invalid %s arguments: %s %s", e.Tool, e.Argument, e.Reason)
}

func (e *InvalidParamsError) Is(target error) bool { return target == ErrInvalidParams }

func (e *InvalidParamsError) Code() int { return mcp.INVALID_PARAMS }

// ErrorCode maps a dispatch error to its JSON-RPC error code.
func ErrorCode(err error) int {
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return mcp.INTERNAL_ERROR
}
