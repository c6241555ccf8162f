package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "gymdesk"
	serverVersion = "1.0.0"
)

// NewServer builds an MCP server with the read-only gymdesk tools: schema, attendance buckets,
// 1RM estimate, progress suggestion and exercise types.
// Served over stdio by cmd/gymstats_mcp and mounted at /mcp by the main service.
func NewServer(service contextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymdesk_schema",
		Description: "Returns the DB schema of the gymdesk tables (attendance, exercise catalog, workout sessions, exercises, sets, progress suggestions): table names, columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_attendance_buckets",
		Description: "Returns attendance grouped into day, month or year buckets: visit count, visits in progress and total time spent. The current day, month or year comes first, the rest newest first. Arg: mode (day|month|year); optional: scope, user_id.",
	}, h.GetAttendanceBucketsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "estimate_one_rep_max",
		Description: "Estimates the one-rep max for a set with the Epley formula, weight * (1 + reps/30). Args: weight, reps.",
	}, h.EstimateOneRepMaxTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_suggestion",
		Description: "Returns the stored progressive-overload suggestion (suggested working weight and rationale) for a user and exercise. Args: user_id, exercise_id.",
	}, h.GetProgressSuggestionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_types",
		Description: "Returns the exercise catalog (id, name, muscle group, description). Optional filter: muscle_group.",
	}, h.GetExerciseTypesTool())

	return s
}
