// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Scriven tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/scrivenhq/scriven/internal/content"
	"github.com/scrivenhq/scriven/internal/richtext"
	"github.com/scrivenhq/scriven/internal/storage"
)

// Server wraps the MCP server with Scriven tools.
type Server struct {
	mcp        *server.MCPServer
	store      storage.Provider
	resolver   *content.Resolver
	normalizer *richtext.Normalizer
}

// New creates a new MCP server with all Scriven tools registered.
func New(store storage.Provider, resolver *content.Resolver, normalizer *richtext.Normalizer) *Server {
	s := &Server{store: store, resolver: resolver, normalizer: normalizer}

	s.mcp = server.NewMCPServer(
		"Scriven",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("read_content",
		mcp.WithDescription("Read workspace file content. Falls back to the remote "+
			"workspace backend when the file is not materialized locally (requires token)."),
		mcp.WithString("workspaceId", mcp.Required(), mcp.Description("Workspace identifier")),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the file (e.g. notes/idea.md)")),
		mcp.WithString("token", mcp.Description("Bearer credential for the remote backend fallback")),
	), s.readContent)

	s.mcp.AddTool(mcp.NewTool("save_content",
		mcp.WithDescription("Save content to a workspace file. Creates parent directories as needed."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path for the file")),
		mcp.WithString("content", mcp.Required(), mcp.Description("File content to store")),
	), s.saveContent)

	s.mcp.AddTool(mcp.NewTool("normalize_content",
		mcp.WithDescription("Normalize editor input to rich-text HTML. Markdown is "+
			"converted; existing HTML passes through unchanged."),
		mcp.WithString("content", mcp.Description("Raw editor input (may be empty)")),
	), s.normalizeContent)

	s.mcp.AddTool(mcp.NewTool("list_content",
		mcp.WithDescription("List workspace files, optionally restricted to a folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listContent)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) readContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workspaceID, err := req.RequireString("workspaceId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	token := ""
	if tok, tokErr := req.RequireString("token"); tokErr == nil {
		token = tok
	}

	body, err := s.resolver.Resolve(ctx, content.Request{
		WorkspaceID: workspaceID,
		Path:        path,
		Token:       token,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resolve %s: %v", path, err)), nil
	}
	return mcp.NewToolResultText(body), nil
}

func (s *Server) saveContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.store.Write(path, []byte(body)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("saved: %s", path)), nil
}

func (s *Server) normalizeContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body := ""
	if c, err := req.RequireString("content"); err == nil {
		body = c
	}
	return mcp.NewToolResultText(s.normalizer.Normalize(body)), nil
}

func (s *Server) listContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	infos, err := s.store.List(folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, fi := range infos {
		paths = append(paths, fi.Path)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}
