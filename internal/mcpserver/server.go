// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the note store as tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/note/internal/core"
)

const usageURI = "note://usage"

// Server wraps the MCP server with note tools.
type Server struct {
	mcp *server.MCPServer
	api *core.API
}

// New creates a new MCP server with all note tools registered.
func New(api *core.API, version string) *Server {
	s := &Server{api: api}

	s.mcp = server.NewMCPServer(
		"note",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_collections",
		mcp.WithDescription("List every collection with its id and name."),
	), s.listCollections)

	s.mcp.AddTool(mcp.NewTool("create_collection",
		mcp.WithDescription("Create a new collection. Names are unique."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new collection")),
	), s.createCollection)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List the notes stored in a collection."),
		mcp.WithNumber("collection_id", mcp.Required(), mcp.Description("Id of the collection")),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a note in an existing collection."),
		mcp.WithNumber("collection_id", mcp.Required(), mcp.Description("Id of the collection")),
		mcp.WithString("body", mcp.Required(), mcp.Description("Text of the note")),
	), s.createNote)

	s.mcp.AddResource(
		mcp.NewResource(usageURI, "Note Store Usage",
			mcp.WithResourceDescription("Data model and workflow of the note store."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readUsageResource,
	)

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

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listCollections(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	colls, err := s.api.Collections.ListCollections(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(colls)
}

func (s *Server) createCollection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	coll, err := s.api.Collections.CreateCollection(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created collection %d: %s", coll.ID, coll.Name)), nil
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("collection_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	notes, err := s.api.Notes.ListNotes(ctx, int64(id))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(notes)
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("collection_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := req.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.api.Notes.CreateNote(ctx, int64(id), body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created note %d in collection %d", note.ID, note.CollectionID)), nil
}

func (s *Server) readUsageResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      usageURI,
			MIMEType: "text/markdown",
			Text:     UsageGuide,
		},
	}, nil
}
