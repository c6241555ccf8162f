// Package main runs the gymstats MCP server over stdio (for local MCP clients).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/gymdesk/internal/config"
	"github.com/2beens/gymdesk/internal/db"
	"github.com/2beens/gymdesk/internal/gymstats/attendance"
	gymstatsmcp "github.com/2beens/gymdesk/internal/gymstats/mcp"
	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// noLocker: the stdio server only reads suggestions.
type noLocker struct{}

func (noLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout is the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("resolve timezone: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMDESK_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	attendanceService := attendance.NewService(attendance.NewRepo(dbPool), loc)
	workoutsRepo := workouts.NewRepo(dbPool)
	exerciseTypes := workouts.NewExerciseTypesCache(workoutsRepo)
	workoutsService := workouts.NewService(
		workoutsRepo,
		exerciseTypes,
		progression.NewEngine(workoutsRepo, noLocker{}),
		nil,
	)

	server := gymstatsmcp.NewServer(gymstatsmcp.NewContextService(
		gymstatsmcp.NewPoolSchemaRepo(dbPool),
		attendanceService,
		workoutsService,
		exerciseTypes,
	))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
