package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymdesk/internal/gymstats/attendance"
	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/gymstats/timeutil"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests: parses input, calls the service, formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

// GetSchemaTool returns the MCP tool handler for get_gymdesk_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// AttendanceBucketsInput is the input for get_attendance_buckets.
type AttendanceBucketsInput struct {
	Mode   string `json:"mode" jsonschema:"Bucket granularity: day, month or year"`
	Scope  string `json:"scope,omitempty" jsonschema:"Filter by scope (room or area, e.g. pool)"`
	UserID string `json:"user_id,omitempty" jsonschema:"Filter by user id"`
}

// GetAttendanceBucketsTool returns the MCP tool handler for get_attendance_buckets.
func (h *Handler) GetAttendanceBucketsTool() func(context.Context, *mcp.CallToolRequest, AttendanceBucketsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AttendanceBucketsInput) (*mcp.CallToolResult, any, error) {
		mode, err := timeutil.ParseBucketMode(in.Mode)
		if err != nil {
			return errorResult("Invalid mode: use day, month or year"), nil, nil
		}

		buckets, err := h.service.AttendanceBuckets(ctx, attendance.BucketsParams{
			UserID: in.UserID,
			Scope:  in.Scope,
			Mode:   mode,
		})
		if err != nil {
			return errorResult("Error fetching attendance: " + err.Error()), nil, nil
		}
		return jsonResult(buckets), nil, nil
	}
}

// OneRepMaxInput is the input for estimate_one_rep_max.
type OneRepMaxInput struct {
	Weight float64 `json:"weight" jsonschema:"Lifted weight, must be positive"`
	Reps   int     `json:"reps" jsonschema:"Completed repetitions, must be positive"`
}

// EstimateOneRepMaxTool returns the MCP tool handler for estimate_one_rep_max.
func (h *Handler) EstimateOneRepMaxTool() func(context.Context, *mcp.CallToolRequest, OneRepMaxInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in OneRepMaxInput) (*mcp.CallToolResult, any, error) {
		if in.Weight <= 0 || in.Reps <= 0 {
			return errorResult("Invalid input: weight and reps must be positive"), nil, nil
		}
		oneRM := progression.EstimateOneRepMax(in.Weight, in.Reps)
		return textResult(fmt.Sprintf(
			"Estimated 1RM for %.2f x %d: %.2f", in.Weight, in.Reps, oneRM,
		)), nil, nil
	}
}

// ProgressSuggestionInput is the input for get_progress_suggestion.
type ProgressSuggestionInput struct {
	UserID     string `json:"user_id" jsonschema:"User id"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise type id (e.g. bench_press)"`
}

// GetProgressSuggestionTool returns the MCP tool handler for get_progress_suggestion.
func (h *Handler) GetProgressSuggestionTool() func(context.Context, *mcp.CallToolRequest, ProgressSuggestionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressSuggestionInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" || in.ExerciseID == "" {
			return errorResult("Invalid input: user_id and exercise_id are required"), nil, nil
		}

		suggestion, err := h.service.ProgressSuggestion(ctx, in.UserID, in.ExerciseID)
		if err != nil {
			if errors.Is(err, progression.ErrSuggestionNotFound) {
				return textResult(fmt.Sprintf(
					"No suggestion yet for user %s and exercise %s. Suggestions are generated when a workout session is completed.",
					in.UserID, in.ExerciseID,
				)), nil, nil
			}
			return errorResult("Error fetching suggestion: " + err.Error()), nil, nil
		}
		return jsonResult(suggestion), nil, nil
	}
}

// ExerciseTypesInput is the input for get_exercise_types.
type ExerciseTypesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. chest, legs)"`
}

// GetExerciseTypesTool returns the MCP tool handler for get_exercise_types.
func (h *Handler) GetExerciseTypesTool() func(context.Context, *mcp.CallToolRequest, ExerciseTypesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseTypesInput) (*mcp.CallToolResult, any, error) {
		types, err := h.service.ExerciseTypes(ctx, in.MuscleGroup)
		if err != nil {
			return errorResult("Error fetching exercise types: " + err.Error()), nil, nil
		}
		return jsonResult(types), nil, nil
	}
}
