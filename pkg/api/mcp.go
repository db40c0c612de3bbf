package api

import (
	"github.com/hazyhaar/corrector-es/pkg/kit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the corrector MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, eps Endpoints) {
	registerCorrectText(srv, eps.Correct)
	registerLexiconInfo(srv, eps.Lexicon)
}

func registerCorrectText(srv *server.MCPServer, ep kit.Endpoint) {
	tool := mcp.NewTool("correct_text",
		mcp.WithDescription("Normalize Spanish prose: clean whitespace and symbols, expand abbreviations, dates, numbers and Roman numerals into words, fix common misspellings. Returns the corrected text and the list of changes."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The Spanish text to correct")),
		mcp.WithString("source", mcp.Description("Optional label stored with the run in the history journal")),
	)

	kit.RegisterMCPTool(srv, tool, ep, func(args map[string]any) (kit.ToolCall, error) {
		text, err := kit.StringArg(args, "text", true)
		if err != nil {
			return kit.ToolCall{}, err
		}
		source, err := kit.StringArg(args, "source", false)
		if err != nil {
			return kit.ToolCall{}, err
		}
		return kit.ToolCall{Request: &correctReq{Text: text}, Source: source}, nil
	})
}

func registerLexiconInfo(srv *server.MCPServer, ep kit.Endpoint) {
	tool := mcp.NewTool("lexicon_info",
		mcp.WithDescription("Describe the loaded lexicon (counts of numerals, abbreviations, special cases, dictionary words), the pipeline stages and the fuzzy-match cutoff."),
	)

	kit.RegisterMCPTool(srv, tool, ep, func(map[string]any) (kit.ToolCall, error) {
		return kit.ToolCall{}, nil
	})
}
