package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pumpkinkking/whereeatai/agent"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
)

// Server is the HTTP boundary over the agent manager.
type Server struct {
	echo    *echo.Echo
	manager *agent.Manager
	logger  logging.Logger
	name    string
	version string
	started time.Time
}

// Options configures a Server.
type Options struct {
	// Name is reported by the service info endpoint.
	Name string
	// Version is reported by the service info endpoint.
	Version string
	// RateLimitCalls caps requests per RateLimitPeriod per client IP.
	// Zero disables rate limiting.
	RateLimitCalls int
	// RateLimitPeriod is the window for RateLimitCalls.
	RateLimitPeriod time.Duration
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// New builds the server and registers all routes.
func New(manager *agent.Manager, optFns ...func(o *Options)) *Server {
	opts := Options{
		Name:            "whereeatai",
		Version:         "0.1.0",
		RateLimitPeriod: time.Minute,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Server{
		echo:    echo.New(),
		manager: manager,
		logger:  logging.OrNoOp(opts.Logger),
		name:    opts.Name,
		version: opts.Version,
		started: time.Now(),
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(requestID())
	s.echo.Use(s.requestLogger())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())
	if opts.RateLimitCalls > 0 {
		s.echo.Use(rateLimiter(opts.RateLimitCalls, opts.RateLimitPeriod))
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/", s.serviceInfo)
	s.echo.GET("/status", s.status)

	s.echo.POST("/travel-plan", s.travelPlan)
	s.echo.POST("/content-analysis", s.contentAnalysis)
	s.echo.POST("/workflow", s.executeWorkflow)

	s.echo.GET("/agents", s.listAgents)
	s.echo.GET("/agents/:id", s.getAgent)
	s.echo.GET("/messages", s.listMessages)

	// One execution endpoint per constructed agent.
	for _, a := range s.manager.Agents() {
		name := a.Name()
		s.echo.POST("/agents/"+name+"/execute", s.executeAgent(name))
	}
}

// Handler exposes the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves on addr until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server starting", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping")
	return s.echo.Shutdown(ctx)
}

// resultJSON maps a core.Result onto an HTTP response. Partial success is a
// completed request and renders 200 alongside full success.
func resultJSON(c echo.Context, res core.Result) error {
	status := http.StatusOK
	if res.Status == core.StatusError {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, res)
}

// bindInput decodes a free-form JSON object body. Echo treats an empty body
// as no-op binding, so an empty input comes back for bodyless requests.
func bindInput(c echo.Context) (core.Input, error) {
	input := core.Input{}
	if err := c.Bind(&input); err != nil {
		return nil, err
	}
	return input, nil
}
