package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/voyp-mcp/internal/logging"
	"github.com/roivaz/voyp-mcp/internal/mcp/prompts"
	"github.com/roivaz/voyp-mcp/internal/mcp/tools"
)

const (
	ServerName    = "voyp-mcp-server"
	ServerVersion = "0.1.0"
)

type Server struct {
	MCP   *server.MCPServer
	Stdio *server.StdioServer
	log   logging.Logger
}

func New(cfg Config) *Server {
	log := cfg.Logger.WithName("mcp")

	hooks := &server.Hooks{}
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		log.Error(err, "request failed", "id", id, "method", string(method))
	})

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)

	for _, tool := range tools.Catalog() {
		mcpServer.AddTool(tool, cfg.Dispatcher.Call)
	}
	for _, prompt := range prompts.Definitions() {
		mcpServer.AddPrompt(prompt, prompts.Handler)
	}

	stdio := server.NewStdioServer(mcpServer)
	if cfg.ErrorLog != nil {
		stdio.SetErrorLogger(cfg.ErrorLog)
	}

	return &Server{
		MCP:   mcpServer,
		Stdio: stdio,
		log:   log,
	}
}

// HandleMessage answers a single JSON-RPC message. Tool calls naming an
// unknown tool or carrying invalid arguments are rejected here with
// METHOD_NOT_FOUND or INVALID_PARAMS; everything else goes to the MCP server.
func (s *Server) HandleMessage(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	if resp := s.rejectToolCall(raw); resp != nil {
		return resp
	}
	return s.MCP.HandleMessage(ctx, raw)
}

type toolCallMessage struct {
	ID     mcp.RequestId `json:"id"`
	Method string        `json:"method"`
	Params struct {
		Name      string `json:"name"`
		Arguments any    `json:"arguments"`
	} `json:"params"`
}

func (s *Server) rejectToolCall(raw json.RawMessage) mcp.JSONRPCMessage {
	var msg toolCallMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Method != string(mcp.MethodToolsCall) || msg.ID.IsNil() {
		return nil
	}

	args, _ := msg.Params.Arguments.(map[string]any)
	err := tools.Validate(msg.Params.Name, args)
	if err == nil {
		return nil
	}

	code := tools.ErrorCode(err)
	s.log.Info("rejected tool call", "id", msg.ID, "tool", msg.Params.Name, "code", code, "reason", err.Error())
	return mcp.NewJSONRPCError(msg.ID, code, err.Error(), nil)
}

// Serve speaks MCP over in/out until ctx is cancelled or in is closed.
// Cancellation is a clean shutdown and returns nil.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	// stdout carries the protocol; this goes to stderr through the logger.
	s.log.Info("Voyp MCP server running on stdio", "name", ServerName, "version", ServerVersion)

	w := &lockedWriter{w: out}
	pr, pw := io.Pipe()
	defer pr.Close()
	go s.screen(in, pw, w)

	err := s.Stdio.Listen(ctx, pr, w)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve stdio: %w", err)
	}

	s.log.Info("Voyp MCP server stopped")
	return nil
}

// screen copies client lines to the stdio server, answering rejected tool
// calls itself.
func (s *Server) screen(in io.Reader, forward *io.PipeWriter, out io.Writer) {
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			if werr := s.screenLine(line, forward, out); werr != nil {
				forward.CloseWithError(werr)
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			forward.CloseWithError(err)
			return
		}
	}
}

func (s *Server) screenLine(line []byte, forward io.Writer, out io.Writer) error {
	resp := s.rejectToolCall(line)
	if resp == nil {
		_, err := forward.Write(line)
		return err
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}

// lockedWriter serializes whole-message writes shared with the stdio server.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
