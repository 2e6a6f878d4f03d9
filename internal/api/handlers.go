package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mvp_launchpad/internal/ai"
	"mvp_launchpad/internal/history"
	"mvp_launchpad/internal/render"
	"mvp_launchpad/internal/usage"
	"mvp_launchpad/internal/workflow"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	orchestrator *workflow.Orchestrator
	history      *history.Store
	usage        *usage.Tracker
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(orchestrator *workflow.Orchestrator, hist *history.Store, tracker *usage.Tracker) *APIHandler {
	return &APIHandler{
		orchestrator: orchestrator,
		history:      hist,
		usage:        tracker,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Idea string `json:"idea" binding:"required"`
}

type UsageResponse struct {
	Count        int  `json:"count"`
	Limit        int  `json:"limit"`
	LimitReached bool `json:"limitReached"`
}

// --- API Handlers ---

// POST /mvp/generate
func (h *APIHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.orchestrator.Submit(c.Request.Context(), req.Idea)
	if err != nil {
		var genErr *ai.GenerationError
		switch {
		case errors.Is(err, workflow.ErrEmptyIdea):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your business idea"})
		case errors.Is(err, workflow.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": "A generation is already in progress"})
		case errors.Is(err, workflow.ErrLimitReached):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Daily generation limit reached. Please come back tomorrow to generate more!",
				"limit": h.usage.Limit(),
			})
		case errors.As(err, &genErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": workflow.UserFacingError})
		default:
			log.Printf("ERROR: Unexpected generation error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": workflow.UserFacingError})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /mvp/status
func (h *APIHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.orchestrator.Snapshot(c.Request.Context()))
}

// GET /usage
func (h *APIHandler) Usage(c *gin.Context) {
	count := h.usage.Count(c.Request.Context())
	c.JSON(http.StatusOK, UsageResponse{
		Count:        count,
		Limit:        h.usage.Limit(),
		LimitReached: count >= h.usage.Limit(),
	})
}

// GET /history
func (h *APIHandler) ListHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.history.Entries())
}

// DELETE /history
func (h *APIHandler) ClearHistory(c *gin.Context) {
	h.history.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// GET /history/latest
func (h *APIHandler) LatestHistory(c *gin.Context) {
	entry, ok := h.history.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No generations yet"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /history/:id
func (h *APIHandler) GetHistory(c *gin.Context) {
	entry, ok := h.history.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "History entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /history/:id/markdown
func (h *APIHandler) HistoryMarkdown(c *gin.Context) {
	entry, ok := h.history.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "History entry not found"})
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(render.Markdown(entry)))
}

// GET /history/:id/preview
func (h *APIHandler) HistoryPreview(c *gin.Context) {
	entry, ok := h.history.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "History entry not found"})
		return
	}
	page, err := render.HTML(entry)
	if err != nil {
		log.Printf("ERROR: Failed to render preview for %s: %v", entry.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render preview"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
