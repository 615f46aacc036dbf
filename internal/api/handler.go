package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linode/legacy-to-techdocs/internal/stats"
	"github.com/linode/legacy-to-techdocs/internal/translate"
)

// Handler implements the conversion HTTP API.
type Handler struct {
	translator *translate.Translator
	collector  *stats.Collector
	hub        *Hub
}

// NewHandler creates a handler over the shared translator.
func NewHandler(translator *translate.Translator, collector *stats.Collector, hub *Hub) *Handler {
	return &Handler{
		translator: translator,
		collector:  collector,
		hub:        hub,
	}
}

// ConvertResult is the response body for a single conversion.
type ConvertResult struct {
	URL       string `json:"url"`
	Converted string `json:"converted,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"errorKind,omitempty"`
}

// Convert handles GET /v1/convert?url=<legacy-url>.
func (h *Handler) Convert(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url parameter"})
		return
	}

	result := h.convertOne(rawURL)
	if result.Error != "" {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

type batchRequest struct {
	URLs []string `json:"urls" binding:"required"`
}

// ConvertBatch handles POST /v1/convert with a JSON body of URLs. One
// failing URL does not fail the batch; each entry carries its own outcome.
func (h *Handler) ConvertBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]ConvertResult, 0, len(req.URLs))
	for _, u := range req.URLs {
		results = append(results, h.convertOne(u))
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Redirect handles GET /v1/redirect?url=<legacy-url> with a 302 to the
// TechDocs page, so legacy links can be pointed at this service directly.
func (h *Handler) Redirect(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url parameter"})
		return
	}

	result := h.convertOne(rawURL)
	if result.Error != "" {
		c.JSON(http.StatusNotFound, result)
		return
	}

	c.Redirect(http.StatusFound, result.Converted)
}

// GetStats handles GET /v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.collector.Snapshot())
}

// ResetStats handles POST /v1/stats/reset.
func (h *Handler) ResetStats(c *gin.Context) {
	h.collector.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// HealthCheck handles GET /v1/health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handler) convertOne(rawURL string) ConvertResult {
	event := Event{Timestamp: time.Now(), Before: rawURL}

	converted, err := h.translator.Translate(rawURL)
	if err != nil {
		h.collector.RecordFailure(rawURL, err)
		event.Error = err.Error()
		h.hub.Publish(event)
		return ConvertResult{
			URL:       rawURL,
			Error:     err.Error(),
			ErrorKind: stats.ErrorKind(err),
		}
	}

	h.collector.RecordSuccess()
	event.After = converted
	h.hub.Publish(event)
	return ConvertResult{URL: rawURL, Converted: converted}
}
