package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool requests into StatsService calls and formats the results.
type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

type UserInput struct {
	User string `json:"user" jsonschema:"Name or id of the user"`
}

type CycleStatsInput struct {
	User     string `json:"user" jsonschema:"Name or id of the user"`
	Interval string `json:"interval,omitempty" jsonschema:"Look-back of the stats: 1M, 3M, 6M, 1Y or ALL (default 6M)"`
}

type WeightTrendInput struct {
	User string `json:"user" jsonschema:"Name or id of the user"`
	Days int    `json:"days,omitempty" jsonschema:"Number of days to look back (default 90)"`
}

type RoutinesInput struct {
	User            string `json:"user" jsonschema:"Name or id of the user"`
	IncludeArchived bool   `json:"include_archived,omitempty" jsonschema:"Also list archived routines"`
}

func errorResult(msg string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg + ": " + err.Error()}},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response", err)
	}
	return textResult(string(raw))
}

// GetCurrentCycleTool returns the MCP tool handler for get_current_cycle.
func (h *Handler) GetCurrentCycleTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		current, err := h.service.CurrentCycle(ctx, in.User)
		if err != nil {
			return errorResult("Error fetching current cycle", err), nil, nil
		}
		if current == nil {
			return textResult("No current cycle: there are no periods recorded in the last cycles."), nil, nil
		}
		return jsonResult(current), nil, nil
	}
}

// GetCycleStatsTool returns the MCP tool handler for get_cycle_stats.
func (h *Handler) GetCycleStatsTool() func(context.Context, *mcp.CallToolRequest, CycleStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CycleStatsInput) (*mcp.CallToolResult, any, error) {
		stats, err := h.service.CycleStats(ctx, in.User, in.Interval)
		if err != nil {
			return errorResult("Error fetching cycle stats", err), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

// GetTrainingStatsTool returns the MCP tool handler for get_training_stats.
func (h *Handler) GetTrainingStatsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		load, err := h.service.TrainingStats(ctx, in.User)
		if err != nil {
			return errorResult("Error fetching training stats", err), nil, nil
		}
		return jsonResult(load), nil, nil
	}
}

// GetBodyWeightTrendTool returns the MCP tool handler for get_body_weight_trend.
func (h *Handler) GetBodyWeightTrendTool() func(context.Context, *mcp.CallToolRequest, WeightTrendInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeightTrendInput) (*mcp.CallToolResult, any, error) {
		points, err := h.service.BodyWeightTrend(ctx, in.User, in.Days)
		if err != nil {
			return errorResult("Error fetching body weight trend", err), nil, nil
		}
		return jsonResult(points), nil, nil
	}
}

// GetRoutinesTool returns the MCP tool handler for get_routines.
func (h *Handler) GetRoutinesTool() func(context.Context, *mcp.CallToolRequest, RoutinesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RoutinesInput) (*mcp.CallToolResult, any, error) {
		routines, err := h.service.Routines(ctx, in.User, in.IncludeArchived)
		if err != nil {
			return errorResult("Error fetching routines", err), nil, nil
		}
		return jsonResult(routines), nil, nil
	}
}
