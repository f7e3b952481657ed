package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/workflow"
)

// serviceInfo describes the service and its surface.
// GET /
func (s *Server) serviceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": s.name,
		"version": s.version,
		"endpoints": map[string]string{
			"status":           "GET /status",
			"travel_plan":      "POST /travel-plan",
			"content_analysis": "POST /content-analysis",
			"workflow":         "POST /workflow",
			"agents":           "GET /agents",
			"agent":            "GET /agents/:id",
			"messages":         "GET /messages",
			"execute_agent":    "POST /agents/{name}/execute",
		},
	})
}

// status reports liveness plus a registry summary.
// GET /status
func (s *Server) status(c echo.Context) error {
	regs := s.manager.Registry().List()
	byStatus := map[string]int{}
	for _, r := range regs {
		byStatus[string(r.Status)]++
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":           "healthy",
		"uptime_seconds":   int(time.Since(s.started).Seconds()),
		"agents":           len(regs),
		"agents_by_status": byStatus,
	})
}

// travelPlan runs the travel planning workflow.
// POST /travel-plan
func (s *Server) travelPlan(c echo.Context) error {
	input, err := bindInput(c)
	if err != nil {
		return badRequest(c, "invalid request body")
	}
	res := s.manager.ExecuteWorkflow(c.Request().Context(), workflow.TravelPlanName, input)
	return resultJSON(c, res)
}

// contentAnalysis runs the content analysis workflow.
// POST /content-analysis
func (s *Server) contentAnalysis(c echo.Context) error {
	input, err := bindInput(c)
	if err != nil {
		return badRequest(c, "invalid request body")
	}
	res := s.manager.ExecuteWorkflow(c.Request().Context(), workflow.ContentAnalysisName, input)
	return resultJSON(c, res)
}

// workflowRequest is the body of the generic workflow dispatch endpoint.
type workflowRequest struct {
	Workflow string     `json:"workflow"`
	Input    core.Input `json:"input"`
}

// executeWorkflow dispatches to any registered workflow by name.
// POST /workflow
func (s *Server) executeWorkflow(c echo.Context) error {
	var req workflowRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Workflow == "" {
		return badRequest(c, "workflow is required")
	}
	res := s.manager.ExecuteWorkflow(c.Request().Context(), req.Workflow, req.Input)
	return resultJSON(c, res)
}

// executeAgent builds the handler for one agent's execution endpoint.
// POST /agents/{name}/execute
func (s *Server) executeAgent(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		input, err := bindInput(c)
		if err != nil {
			return badRequest(c, "invalid request body")
		}
		res := s.manager.ExecuteAgent(c.Request().Context(), name, input)
		return resultJSON(c, res)
	}
}

// listAgents returns every registration, optionally filtered by status.
// GET /agents?status=active
func (s *Server) listAgents(c echo.Context) error {
	var statuses []a2a.AgentStatus
	if v := c.QueryParam("status"); v != "" {
		statuses = append(statuses, a2a.AgentStatus(v))
	}
	regs := s.manager.Registry().List(statuses...)
	return c.JSON(http.StatusOK, map[string]any{
		"agents": regs,
		"count":  len(regs),
	})
}

// getAgent returns one registration by agent id.
// GET /agents/:id
func (s *Server) getAgent(c echo.Context) error {
	id := c.Param("id")
	reg, ok := s.manager.Registry().Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, core.NewNotFoundError("agent", id).ToResult())
	}
	return c.JSON(http.StatusOK, reg)
}

// listMessages returns the message history, optionally filtered by agent and
// truncated to the most recent limit entries.
// GET /messages?agent_id=...&limit=...
func (s *Server) listMessages(c echo.Context) error {
	agentID := c.QueryParam("agent_id")
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return badRequest(c, "limit must be an integer")
		}
		limit = n
	}
	msgs := s.manager.Protocol().History(agentID, limit)
	return c.JSON(http.StatusOK, map[string]any{
		"messages": msgs,
		"count":    len(msgs),
	})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}
