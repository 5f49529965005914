package mcp

import (
	"github.com/2beens/healthtracker/internal/health"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func NewStatsServiceFrom(services *health.Services) *StatsService {
	return NewStatsService(services.Users, services.Cycles, services.Training, services.Body, services.Routines)
}

// NewServer builds an MCP server with read-only health stats tools. It is
// mounted by the backend at /mcp and served over stdio by cmd/healthstats_mcp.
func NewServer(service *StatsService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "healthstats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_current_cycle",
		Description: "Returns the current menstrual cycle of a user: the begin date and the expected days left with their variation. Arg: user (name or id).",
	}, h.GetCurrentCycleTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_cycle_stats",
		Description: "Returns the number of cycles and the median cycle length with its variation, in days, for a look-back interval. Args: user; optional: interval (1M, 3M, 6M, 1Y, ALL).",
	}, h.GetCycleStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_stats",
		Description: "Returns the training load of a user: daily short-term and long-term load, the current load ratio and its recommended range. Arg: user.",
	}, h.GetTrainingStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_body_weight_trend",
		Description: "Returns the moving average of the body weight per day. Args: user; optional: days to look back (default 90).",
	}, h.GetBodyWeightTrendTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_routines",
		Description: "Returns the training routines of a user, the most recently trained first, with number of sets and duration. Args: user; optional: include_archived.",
	}, h.GetRoutinesTool())

	return s
}
