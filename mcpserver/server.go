// Package mcpserver exposes the gateway's tool catalog to MCP clients over
// a stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ryanreadbooks/cmdgate/component/tool"
	"github.com/ryanreadbooks/cmdgate/pkg/xmap"
)

const (
	ServerName    = "cmdgate"
	ServerVersion = "0.1.0"
)

type Server struct {
	mcp      *server.MCPServer
	invokers map[string]tool.Invoker
}

// New registers every invoker as an MCP tool. Invoker errors surface as
// error-flagged results, never as protocol faults, and a panicking tool is
// recovered by the server middleware.
func New(invokers ...tool.Invoker) *Server {
	s := &Server{
		mcp: server.NewMCPServer(ServerName, ServerVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		invokers: make(map[string]tool.Invoker, len(invokers)),
	}

	for _, inv := range invokers {
		s.register(inv)
	}

	names := xmap.Keys(s.invokers)
	slices.Sort(names)
	slog.Info("tools registered", "tools", names)

	return s
}

func (s *Server) register(inv tool.Invoker) {
	info := inv.Info()
	s.invokers[info.Name] = inv

	s.mcp.AddTool(
		mcp.NewToolWithRawSchema(info.Name, info.Description, info.Schema.Raw()),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := json.Marshal(req.GetArguments())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			requestId := uuid.NewString()
			began := time.Now()

			out, err := inv.Invoke(ctx, string(args))
			if err != nil {
				slog.Info("tool call rejected",
					"request_id", requestId, "tool", info.Name, "cost", time.Since(began), "error", err)
				return mcp.NewToolResultError(err.Error()), nil
			}

			slog.Info("tool call completed",
				"request_id", requestId, "tool", info.Name, "cost", time.Since(began))
			return mcp.NewToolResultText(out), nil
		},
	)
}

// Serve handles MCP requests on in/out until ctx is done or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}
