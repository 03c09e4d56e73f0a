// Package api exposes recipe grabbing and shopping list merging over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/gaurav-prasanna/recipegrab/core/shopping"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestTimeout bounds the page fetch behind a single request.
const requestTimeout = 45 * time.Second

// RecipeSource returns the normalized recipes of a page.
type RecipeSource interface {
	Recipes(ctx context.Context, rawURL string) ([]core.Recipe, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Recipes  RecipeSource
	Renderer core.Renderer
	Log      *zap.Logger
}

// NewHandler creates a Handler. renderer turns each recipe into the note
// text returned by GrabRecipes.
func NewHandler(recipes RecipeSource, renderer core.Renderer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Recipes: recipes, Renderer: renderer, Log: log}
}

type grabRequest struct {
	URL string `json:"url" binding:"required"`
}

type grabbedRecipe struct {
	Name     string      `json:"name"`
	Markdown string      `json:"markdown"`
	Recipe   core.Recipe `json:"recipe"`
}

type mergeRequest struct {
	Existing string   `json:"existing"`
	Lines    []string `json:"lines"`
	Source   string   `json:"source"`
}

type mergeResponse struct {
	Content string `json:"content"`
	Merged  int    `json:"merged"`
	Added   int    `json:"added"`
}

// Health reports that the server is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GrabRecipes fetches the page in the request body and returns every
// recipe on it, rendered and normalized.
func (h *Handler) GrabRecipes(c *gin.Context) {
	var req grabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be {\"url\": \"...\"}"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	recipes, err := h.Recipes.Recipes(ctx, req.URL)
	switch {
	case errors.Is(err, core.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, core.ErrNoRecipe):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.Log.Warn("grab failed", zap.String("url", req.URL), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]grabbedRecipe, 0, len(recipes))
	for _, r := range recipes {
		data, err := h.Renderer.Render(r)
		if err != nil {
			h.Log.Error("render failed", zap.String("recipe", r.Name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out = append(out, grabbedRecipe{Name: r.Name, Markdown: string(data), Recipe: r})
	}
	c.JSON(http.StatusOK, gin.H{"recipes": out})
}

// MergeShoppingList consolidates lines into the existing list text.
func (h *Handler) MergeShoppingList(c *gin.Context) {
	var req mergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	content, summary := shopping.Consolidate(req.Existing, req.Lines, req.Source)
	c.JSON(http.StatusOK, mergeResponse{Content: content, Merged: summary.Merged, Added: summary.Added})
}
