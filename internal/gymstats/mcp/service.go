package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymdesk/internal/gymstats/attendance"
	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/gymstats/workouts"
)

type attendanceService interface {
	Buckets(ctx context.Context, params attendance.BucketsParams) ([]attendance.Bucket, error)
}

type workoutsService interface {
	GetSuggestion(ctx context.Context, userID, exerciseID string) (*progression.ProgressSuggestion, error)
	ExerciseTypes(ctx context.Context, muscleGroup string) ([]workouts.ExerciseType, error)
}

type exerciseNamer interface {
	Name(ctx context.Context, id string) string
}

// contextService provides the read-only gymdesk data exposed over MCP.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	AttendanceBuckets(ctx context.Context, params attendance.BucketsParams) ([]BucketSummary, error)
	ProgressSuggestion(ctx context.Context, userID, exerciseID string) (*SuggestionInfo, error)
	ExerciseTypes(ctx context.Context, muscleGroup string) ([]workouts.ExerciseType, error)
}

// BucketSummary is an attendance bucket without its records.
type BucketSummary struct {
	Key             string `json:"key"`
	Label           string `json:"label"`
	Count           int    `json:"count"`
	InProgress      int    `json:"in_progress"`
	TotalDurationMs int64  `json:"total_duration_ms"`
	TotalDuration   string `json:"total_duration"`
}

// SuggestionInfo is a stored progress suggestion with the exercise display name.
type SuggestionInfo struct {
	progression.ProgressSuggestion
	ExerciseName string `json:"exerciseName"`
}

type ContextService struct {
	schema        SchemaRepo
	attendance    attendanceService
	workouts      workoutsService
	exerciseNames exerciseNamer
}

func NewContextService(
	schemaRepo SchemaRepo,
	attendanceService attendanceService,
	workoutsService workoutsService,
	exerciseNames exerciseNamer,
) *ContextService {
	return &ContextService{
		schema:        schemaRepo,
		attendance:    attendanceService,
		workouts:      workoutsService,
		exerciseNames: exerciseNames,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the gymdesk tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymdesk DB Schema\n\nNo gymdesk tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymdesk DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(gymdeskTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) AttendanceBuckets(ctx context.Context, params attendance.BucketsParams) ([]BucketSummary, error) {
	buckets, err := s.attendance.Buckets(ctx, params)
	if err != nil {
		return nil, err
	}

	summaries := make([]BucketSummary, 0, len(buckets))
	for _, b := range buckets {
		summary := BucketSummary{
			Key:             b.Key,
			Label:           b.Label,
			Count:           b.Count,
			TotalDurationMs: b.TotalDurationMs,
			TotalDuration:   b.TotalDuration,
		}
		for _, r := range b.Records {
			if r.InProgress() {
				summary.InProgress++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *ContextService) ProgressSuggestion(ctx context.Context, userID, exerciseID string) (*SuggestionInfo, error) {
	suggestion, err := s.workouts.GetSuggestion(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	return &SuggestionInfo{
		ProgressSuggestion: *suggestion,
		ExerciseName:       s.exerciseNames.Name(ctx, exerciseID),
	}, nil
}

func (s *ContextService) ExerciseTypes(ctx context.Context, muscleGroup string) ([]workouts.ExerciseType, error) {
	return s.workouts.ExerciseTypes(ctx, muscleGroup)
}
