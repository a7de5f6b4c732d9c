package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sokoban/internal/puzzle"
	"sokoban/internal/solver"
	"sokoban/internal/taboo"
	"sokoban/internal/validate"
	"sokoban/internal/warehouse"
)

type errorResponse struct {
	Error string `json:"error"`
}

type solveRequest struct {
	// Warehouse is the grid text, optionally preceded by a weight line.
	Warehouse string `json:"warehouse" binding:"required"`
}

type solveResponse struct {
	Result  string          `json:"result"`
	Actions []puzzle.Action `json:"actions,omitempty"`
	Cost    *int            `json:"cost,omitempty"`
	Cached  bool            `json:"cached,omitempty"`
}

type checkRequest struct {
	Warehouse string   `json:"warehouse" binding:"required"`
	Actions   []string `json:"actions"`
}

type checkResponse struct {
	Result string `json:"result"`
}

type tabooRequest struct {
	Warehouse string `json:"warehouse" binding:"required"`
}

type tabooResponse struct {
	Taboo string `json:"taboo"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	w, err := warehouse.Parse(req.Warehouse)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	sol, err := solver.Solve(c.Request.Context(), w, solver.Options{
		Heuristic: s.cfg.Heuristic,
		NodeLimit: s.cfg.NodeLimit,
		Cache:     s.store,
	})
	solveDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, solver.ErrImpossible):
		solveTotal.WithLabelValues("impossible").Inc()
		c.JSON(http.StatusOK, solveResponse{Result: validate.Impossible})
	case err != nil:
		solveTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		if sol.FromCache {
			solveTotal.WithLabelValues("cached").Inc()
		} else {
			solveTotal.WithLabelValues("solved").Inc()
			solveExpanded.Observe(float64(sol.Expanded))
		}
		c.JSON(http.StatusOK, solveResponse{
			Result:  "solved",
			Actions: sol.Actions,
			Cost:    &sol.Cost,
			Cached:  sol.FromCache,
		})
	}
}

func (s *Server) handleCheck(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	w, err := warehouse.Parse(req.Warehouse)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	actions, err := puzzle.ParseSequence(req.Actions)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rendered, err := validate.ApplySequence(w, actions)
	if errors.Is(err, validate.ErrImpossible) {
		c.JSON(http.StatusOK, checkResponse{Result: validate.Impossible})
		return
	}
	c.JSON(http.StatusOK, checkResponse{Result: rendered})
}

func (s *Server) handleTaboo(c *gin.Context) {
	var req tabooRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	w, err := warehouse.Parse(req.Warehouse)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tabooResponse{Taboo: taboo.Render(w, taboo.Compute(w))})
}
