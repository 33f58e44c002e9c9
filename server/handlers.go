package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathlight/core"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// PathView is one edge in the list view, with resolved endpoint names.
type PathView struct {
	core.Edge
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
}

// RouteRequest holds the query parameters of GET /v1/route.
type RouteRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// RouteResponse is the body of a successful GET /v1/route.
// Distance is omitted when no path exists.
type RouteResponse struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Found       bool     `json:"found"`
	Path        []string `json:"path"`
	Names       []string `json:"names"`
	Distance    *float64 `json:"distance,omitempty"`
	Highlighted []int    `json:"highlighted"`
}

// Handlers serves the HTTP API on top of a Service.
type Handlers struct {
	svc *Service
}

// NewHandlers creates Handlers for svc.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleNodes handles GET /v1/nodes.
func (h *Handlers) HandleNodes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"nodes": h.svc.Nodes()})
}

// HandlePaths handles GET /v1/paths.
func (h *Handlers) HandlePaths(c *gin.Context) {
	edges := h.svc.Paths()
	views := make([]PathView, len(edges))
	for i, e := range edges {
		views[i] = PathView{Edge: e, FromName: h.svc.Name(e.From), ToName: h.svc.Name(e.To)}
	}
	c.JSON(http.StatusOK, gin.H{"paths": views})
}

// HandleRoute handles GET /v1/route?from=&to=.
//
// Response:
//
//	200 OK: RouteResponse (found=false with an empty path when unreachable)
//	400 Bad Request: missing from/to
//	404 Not Found: from or to matches no node
func (h *Handlers) HandleRoute(c *gin.Context) {
	logger := h.svc.logger.With("request_id", c.GetString(requestIDKey), "handler", "HandleRoute")

	var req RouteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("invalid route request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query parameters 'from' and 'to' are required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	res, err := h.svc.Route(c.Request.Context(), req.From, req.To)
	if err != nil {
		status, code := http.StatusInternalServerError, "ROUTE_FAILED"
		if errors.Is(err, ErrNodeNotFound) {
			status, code = http.StatusNotFound, "NODE_NOT_FOUND"
		} else if errors.Is(err, ErrEmptyReference) {
			status, code = http.StatusBadRequest, "INVALID_REQUEST"
		}
		logger.Warn("route failed", "error", err)
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	c.JSON(http.StatusOK, NewRouteResponse(res))
}

// NewRouteResponse converts a RouteResult to its wire form.
func NewRouteResponse(res RouteResult) RouteResponse {
	resp := RouteResponse{
		From:        res.From.ID,
		To:          res.To.ID,
		Found:       res.Found,
		Path:        res.Path,
		Names:       res.Names,
		Highlighted: res.Highlighted,
	}
	if res.Found {
		d := res.Distance
		resp.Distance = &d
	}
	return resp
}
