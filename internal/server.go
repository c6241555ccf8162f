package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/config"
	"github.com/2beens/gymdesk/internal/db"
	"github.com/2beens/gymdesk/internal/gymstats/attendance"
	gymstatsmcp "github.com/2beens/gymdesk/internal/gymstats/mcp"
	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/gymstats/workouts"
	"github.com/2beens/gymdesk/internal/middleware"
	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"
)

const checkInRouteName = "attendance-checkin"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	attendanceService *attendance.Service
	workoutsService   *workouts.Service
	mcpService        *gymstatsmcp.ContextService
	rateLimiter       middleware.RequestRateLimiter
	tokenChecker      auth.Checker

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	APITokenHash            string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve timezone: %w", err)
	}

	dbParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}
	if cfg.RunMigrations {
		if err := db.RunMigrations(dbParams); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry, err := metrics.SetupPrometheus(pgxpoolCollector)
	if err != nil {
		return nil, fmt.Errorf("setup prometheus: %w", err)
	}
	metricsManager := metrics.NewManager("gymdesk", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := newRedisClient(net.JoinHostPort(cfg.RedisHost, cfg.RedisPort), params.RedisPassword)

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymdesk-backend")
	if err != nil {
		return nil, err
	}

	if params.APITokenHash == "" {
		log.Warnln("api token hash not set, all protected routes will respond with 401")
	}

	attendanceService := attendance.NewService(attendance.NewRepo(dbPool), loc)

	workoutsRepo := workouts.NewRepo(dbPool)
	exerciseTypes := workouts.NewExerciseTypesCache(workoutsRepo)
	engine := progression.NewEngine(
		workoutsRepo,
		progression.NewRedisLocker(rdb, progression.DefaultLockTTL),
	)
	workoutsService := workouts.NewService(workoutsRepo, exerciseTypes, engine, metricsManager)

	mcpService := gymstatsmcp.NewContextService(
		gymstatsmcp.NewPoolSchemaRepo(dbPool),
		attendanceService,
		workoutsService,
		exerciseTypes,
	)

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,

		attendanceService: attendanceService,
		workoutsService:   workoutsService,
		mcpService:        mcpService,
		rateLimiter:       redis_rate.NewLimiter(rdb),
		tokenChecker:      auth.NewTokenChecker(params.APITokenHash, auth.DefaultVerifiedTTL),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// newRedisClient returns a redis client with every command traced.
func newRedisClient(addr, password string, tracingOpts ...redisotel.Option) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0, // use default DB
	})
	rdb.AddHook(redisotel.NewTracingHook(tracingOpts...))
	return rdb
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymdesk-router"))

	r.HandleFunc("/", handleRoot).Methods("GET", "OPTIONS").Name("root")

	attendanceHandler := attendance.NewHandler(s.attendanceService, s.metricsManager)
	checkInRateLimit := middleware.RateLimit(
		s.rateLimiter,
		checkInRouteName,
		s.config.CheckInRateLimitPerMinute,
		s.metricsManager,
	)
	r.Handle("/attendance/checkin", checkInRateLimit(http.HandlerFunc(attendanceHandler.HandleCheckIn))).Methods("POST", "OPTIONS").Name(checkInRouteName)
	r.HandleFunc("/attendance/{id}/checkout", attendanceHandler.HandleCheckOut).Methods("POST", "OPTIONS").Name("attendance-checkout")
	r.HandleFunc("/attendance/buckets", attendanceHandler.HandleBuckets).Methods("GET", "OPTIONS").Name("attendance-buckets")

	workoutsHandler := workouts.NewHandler(s.workoutsService)
	r.HandleFunc("/workouts/sessions", workoutsHandler.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/workouts/sessions/{id}", workoutsHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/workouts/sessions/{id}/exercises", workoutsHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/workouts/sessions/{id}/complete", workoutsHandler.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
	r.HandleFunc("/workouts/exercises/types", workoutsHandler.HandleExerciseTypes).Methods("GET", "OPTIONS").Name("exercise-types")
	r.HandleFunc("/workouts/exercises/{id}/sets", workoutsHandler.HandleLogSet).Methods("POST", "OPTIONS").Name("log-set")
	r.HandleFunc("/workouts/suggestions/{userId}/{exerciseId}", workoutsHandler.HandleGetSuggestion).Methods("GET", "OPTIONS").Name("get-suggestion")
	r.HandleFunc("/progression/1rm", workoutsHandler.HandleOneRepMax).Methods("GET", "OPTIONS").Name("one-rep-max")

	if s.config.MCPEnabled {
		mcpServer := gymstatsmcp.NewServer(s.mcpService)
		mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)
		r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")
		log.Debugln("mcp server mounted on /mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop accepting requests before closing the clients they depend on
	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("http server: %w", err))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	for _, err := range multierr.Errors(shutdownErr) {
		log.Errorf(" >>> graceful shutdown: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "gymdesk: I'm OK, thanks ;)")
}
