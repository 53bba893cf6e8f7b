// Package http holds the REST handlers for the reference API.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jsrefhub/backend/internal/catalog"
	"github.com/jsrefhub/backend/internal/drafts"
	"github.com/jsrefhub/backend/internal/logging"
	"github.com/jsrefhub/backend/internal/monitoring"
	"github.com/jsrefhub/backend/internal/pagecache"
	"github.com/jsrefhub/backend/internal/playground"
	"github.com/jsrefhub/backend/internal/render"
	"github.com/jsrefhub/backend/internal/sandbox"
)

// maxCodeBytes bounds the snippet size accepted by /execute.
const maxCodeBytes = 64 * 1024

// Handlers contains all HTTP handlers.
type Handlers struct {
	catalog    *catalog.Manager
	playground *playground.Service
	drafts     *drafts.Store
	cache      *pagecache.Cache
	renderer   *render.Renderer
	metrics    *monitoring.Metrics
	log        *logging.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(
	cat *catalog.Manager,
	pg *playground.Service,
	draftStore *drafts.Store,
	cache *pagecache.Cache,
	renderer *render.Renderer,
	metrics *monitoring.Metrics,
	log *logging.Logger,
) *Handlers {
	return &Handlers{
		catalog:    cat,
		playground: pg,
		drafts:     draftStore,
		cache:      cache,
		renderer:   renderer,
		metrics:    metrics,
		log:        log,
	}
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "jsref-backend",
		"version": "0.3.0",
	})
}

// Health handles the detailed health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"catalog":    h.catalog.Stats(),
		"page_cache": h.cache.Stats(),
		"uptime_s":   int(h.metrics.Uptime().Seconds()),
	})
}

// ListPages lists reference pages, optionally filtered by category.
func (h *Handlers) ListPages(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	pages := h.catalog.List(category)
	c.JSON(http.StatusOK, gin.H{
		"pages":      pages,
		"count":      len(pages),
		"categories": h.catalog.Categories(),
	})
}

// GetPage returns one reference page.
func (h *Handlers) GetPage(c *gin.Context) {
	page, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// PageHTML serves the rendered page, from the offline cache when
// possible.
func (h *Handlers) PageHTML(c *gin.Context) {
	id := c.Param("id")
	cachePath := "/pages/" + id + "/html"

	if cached, ok, err := h.cache.Get(cachePath); err == nil && ok {
		h.metrics.CacheHits.Inc()
		c.Data(http.StatusOK, "text/html; charset=utf-8", cached)
		return
	}
	h.metrics.CacheMisses.Inc()

	page, ok := h.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	html, err := h.renderer.Page(page)
	if err != nil {
		h.log.Error("render failed", zap.String("page_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render page"})
		return
	}

	if err := h.cache.Put(cachePath, html); err != nil {
		h.log.Warn("page cache store failed", zap.String("path", cachePath), zap.Error(err))
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// ResetExample returns the original example text for a page, backing
// the editor's "Reset" action.
func (h *Handlers) ResetExample(c *gin.Context) {
	page, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page_id": page.ID,
		"code":    page.SyntaxExample,
	})
}

// Search finds pages matching a free-text query.
func (h *Handlers) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	matches := h.catalog.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": matches,
		"count":   len(matches),
	})
}

// Execute runs one snippet. Each HTTP request is its own session, so
// concurrent requests never contend on playground state.
func (h *Handlers) Execute(c *gin.Context) {
	var req playground.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Code) > maxCodeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "code exceeds maximum size"})
		return
	}

	record, err := h.playground.Run(c.Request.Context(), req)
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, sandbox.ErrPoolClosed) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListRuns returns the recent run history, newest first.
func (h *Handlers) ListRuns(c *gin.Context) {
	runs := h.playground.Recent()
	c.JSON(http.StatusOK, gin.H{
		"runs":  runs,
		"count": len(runs),
	})
}

// SaveDraft persists in-progress edited code for a page.
func (h *Handlers) SaveDraft(c *gin.Context) {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.drafts.Save(c.Param("id"), body.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.metrics.DraftsSaved.Inc()
	c.JSON(http.StatusOK, draft)
}

// GetDraft returns the saved draft for a page.
func (h *Handlers) GetDraft(c *gin.Context) {
	draft, ok, err := h.drafts.Load(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no draft for page"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DeleteDraft removes the saved draft for a page.
func (h *Handlers) DeleteDraft(c *gin.Context) {
	if err := h.drafts.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ListDrafts returns the page IDs with saved drafts.
func (h *Handlers) ListDrafts(c *gin.Context) {
	ids, err := h.drafts.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": ids, "count": len(ids)})
}
