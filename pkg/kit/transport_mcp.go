package kit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolCall is what a tool decoder extracts from the call arguments. Source,
// when set, labels the run instead of the transport name.
type ToolCall struct {
	Request any
	Source  string
}

// ToolDecoder turns raw tool arguments into a ToolCall.
type ToolDecoder func(args map[string]any) (ToolCall, error)

// RegisterMCPTool exposes an Endpoint as an MCP tool. Decode and endpoint
// failures come back as tool errors prefixed with the tool name; the
// protocol call itself always succeeds.
func RegisterMCPTool(srv *server.MCPServer, tool mcp.Tool, endpoint Endpoint, decode ToolDecoder) {
	name := tool.Name
	srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		call, err := decode(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: invalid arguments: %v", name, err)), nil
		}
		ctx = EnsureRequestID(WithTransport(ctx, "mcp"))
		if call.Source != "" {
			ctx = WithSource(ctx, call.Source)
		}

		resp, err := endpoint(ctx, call.Request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", name, err)), nil
		}
		data, err := json.Marshal(resp)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: encode result: %v", name, err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})
}

// StringArg reads a string argument. A missing optional argument yields "".
func StringArg(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("%s is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, v)
	}
	return s, nil
}
