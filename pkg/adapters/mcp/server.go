// Package mcp exposes gridwalk's pure operations as Model Context Protocol
// tools over stdio, so agent hosts can traverse and generate grids without
// shelling out.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/pkg/grid"
	"github.com/aretw0/gridwalk/pkg/spiral"
)

// TraverseResponse is the structured result of the spiral_traverse tool.
type TraverseResponse struct {
	Values []int `json:"values" jsonschema_description:"Grid values in spiral visitation order"`
	Rows   int   `json:"rows" jsonschema_description:"Row count of the input grid"`
	Cols   int   `json:"cols" jsonschema_description:"Column count of the input grid"`
}

// GridResponse is the structured result of tools that return a full grid.
type GridResponse struct {
	Grid [][]int `json:"grid" jsonschema_description:"Resulting grid, row-major"`
	Rows int     `json:"rows" jsonschema_description:"Row count"`
	Cols int     `json:"cols" jsonschema_description:"Column count"`
}

// Server exposes the traversal operations as an MCP Server.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance with all tools registered.
func NewServer() *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("gridwalk-mcp", gridwalk.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: spiral_traverse
	traverseTool := mcp.NewTool("spiral_traverse",
		mcp.WithDescription("Traverse a rectangular grid in concentric spiral order, starting at the top-left corner."),
		mcp.WithString("grid", mcp.Required(), mcp.Description("JSON 2D array of integers, e.g. [[1,2],[3,4]]")),
		mcp.WithString("direction", mcp.Description("'clockwise' (default) or 'counter_clockwise'")),
		mcp.WithOutputSchema[TraverseResponse](),
	)
	s.mcpServer.AddTool(traverseTool, mcp.NewStructuredToolHandler(s.handleTraverse))

	// TOOL: spiral_fill
	fillTool := mcp.NewTool("spiral_fill",
		mcp.WithDescription("Build the rows x cols grid whose spiral order is 1..rows*cols."),
		mcp.WithNumber("rows", mcp.Required(), mcp.Description("Row count")),
		mcp.WithNumber("cols", mcp.Required(), mcp.Description("Column count")),
		mcp.WithString("direction", mcp.Description("'clockwise' (default) or 'counter_clockwise'")),
		mcp.WithOutputSchema[GridResponse](),
	)
	s.mcpServer.AddTool(fillTool, mcp.NewStructuredToolHandler(s.handleFill))

	// TOOL: grid_rotate
	rotateTool := mcp.NewTool("grid_rotate",
		mcp.WithDescription("Rotate a rectangular grid by quarter turns clockwise."),
		mcp.WithString("grid", mcp.Required(), mcp.Description("JSON 2D array of integers")),
		mcp.WithNumber("turns", mcp.Description("Quarter turns clockwise: 1, 2 or 3 (default 1)")),
		mcp.WithOutputSchema[GridResponse](),
	)
	s.mcpServer.AddTool(rotateTool, mcp.NewStructuredToolHandler(s.handleRotate))
}

// Handler methods for structured tools

func (s *Server) handleTraverse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TraverseResponse, error) {
	g, err := parseGridArg(args)
	if err != nil {
		return TraverseResponse{}, err
	}
	opts, err := walkOptions(args)
	if err != nil {
		return TraverseResponse{}, err
	}

	return TraverseResponse{
		Values: spiral.Order(g, opts...),
		Rows:   g.Rows(),
		Cols:   g.Cols(),
	}, nil
}

func (s *Server) handleFill(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GridResponse, error) {
	rows, ok := args["rows"].(float64)
	if !ok {
		return GridResponse{}, fmt.Errorf("missing or invalid 'rows'")
	}
	cols, ok := args["cols"].(float64)
	if !ok {
		return GridResponse{}, fmt.Errorf("missing or invalid 'cols'")
	}
	opts, err := walkOptions(args)
	if err != nil {
		return GridResponse{}, err
	}

	g := spiral.Fill(int(rows), int(cols), opts...)
	return GridResponse{
		Grid: g.RowSlices(),
		Rows: g.Rows(),
		Cols: g.Cols(),
	}, nil
}

func (s *Server) handleRotate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GridResponse, error) {
	g, err := parseGridArg(args)
	if err != nil {
		return GridResponse{}, err
	}

	turns := 1
	if t, ok := args["turns"].(float64); ok {
		turns = int(t)
	}

	var rotated *grid.Grid[int]
	switch turns {
	case 1:
		rotated = grid.Rotate90(g)
	case 2:
		rotated = grid.Rotate180(g)
	case 3:
		rotated = grid.Rotate270(g)
	default:
		return GridResponse{}, fmt.Errorf("turns must be 1, 2 or 3, got %d", turns)
	}

	return GridResponse{
		Grid: rotated.RowSlices(),
		Rows: rotated.Rows(),
		Cols: rotated.Cols(),
	}, nil
}

func parseGridArg(args map[string]interface{}) (*grid.Grid[int], error) {
	raw, ok := args["grid"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'grid'")
	}

	var rows [][]int
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("parsing 'grid': %w", err)
	}

	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func walkOptions(args map[string]interface{}) ([]spiral.Option, error) {
	dir, _ := args["direction"].(string)
	switch dir {
	case "", "clockwise":
		return nil, nil
	case "counter_clockwise":
		return []spiral.Option{spiral.CounterClockwise()}, nil
	default:
		return nil, fmt.Errorf("unknown direction %q", dir)
	}
}
