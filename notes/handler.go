package notes

import (
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pdfnotes-backend/config"
	"pdfnotes-backend/files"
	"pdfnotes-backend/sse"
	"pdfnotes-backend/templates"
)

type Handler struct {
	AI       AIClient
	Settings config.Settings
	KeyOK    bool
}

func NewHandler(ai AIClient, settings config.Settings, keyOK bool) *Handler {
	return &Handler{AI: ai, Settings: settings, KeyOK: keyOK}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/templates", h.Templates)
	api.POST("/download", h.Download)

	guarded := api.Group("", h.RequireKey)
	guarded.POST("/extract", h.Extract)
	guarded.POST("/compose", h.Compose)
	guarded.POST("/generate", h.Generate)
	guarded.POST("/generate/stream", h.GenerateStream)

	r.GET("/healthz", h.Health)
}

// RequireKey gates the generation path: without a resolved key the
// whole workflow is halted, with the message naming every place the
// key can be provided.
func (h *Handler) RequireKey(c *gin.Context) {
	if !h.KeyOK {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": config.KeyGuidance()})
		return
	}
	c.Next()
}

// Templates returns the style catalog plus the defaults and bounds the
// page needs to build its controls.
func (h *Handler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates": templates.Catalog,
		"defaults": gin.H{
			"temperature": h.Settings.DefaultTemperature,
			"max_pages":   h.Settings.DefaultMaxPages,
		},
		"limits": gin.H{
			"temperature_min":  0.0,
			"temperature_max":  1.0,
			"temperature_step": 0.05,
			"max_pages_min":    1,
			"max_pages_max":    h.Settings.MaxPagesLimit,
		},
	})
}

// Extract accepts one multipart PDF and returns its text. The page cap
// bounds cost on large documents; when it cuts the document short the
// response says so, since the user should know only part of the file
// was read.
func (h *Handler) Extract(c *gin.Context) {
	upFile, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a PDF file is required"})
		return
	}
	if strings.ToLower(filepath.Ext(upFile.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only PDF files are allowed"})
		return
	}
	if upFile.Size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is empty"})
		return
	}
	maxBytes := h.Settings.MaxUploadMB << 20
	if upFile.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large (max " + strconv.FormatInt(h.Settings.MaxUploadMB, 10) + "MB)"})
		return
	}

	maxPages := h.Settings.DefaultMaxPages
	if v := c.PostForm("max_pages"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxPages = n
		}
	}
	if maxPages < 1 {
		maxPages = 1
	}
	if maxPages > h.Settings.MaxPagesLimit {
		maxPages = h.Settings.MaxPagesLimit
	}

	f, err := upFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}

	id := uuid.NewString()
	start := time.Now()
	total := files.PageCount(data)
	text := files.ExtractText(data, maxPages)
	if text == "" {
		// Expected for scanned/image-only documents; no API call is
		// ever made from this state.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "couldn't extract text from this PDF; try a different PDF (digital, not scanned)"})
		return
	}

	pagesRead := total
	if pagesRead > maxPages {
		pagesRead = maxPages
	}
	log.Printf("{\"event\":\"extract\",\"id\":%q,\"pages\":%d,\"read\":%d,\"chars\":%d,\"elapsed_ms\":%d}",
		id, total, pagesRead, len(text), time.Since(start).Milliseconds())

	c.JSON(http.StatusOK, gin.H{
		"id":              id,
		"text":            text,
		"chars":           len(text),
		"pages_total":     total,
		"pages_read":      pagesRead,
		"pages_truncated": total > maxPages,
	})
}

// Compose returns the editable prompt for a style selection or custom
// override.
func (h *Handler) Compose(c *gin.Context) {
	var req struct {
		Style  string `json:"style"`
		Custom string `json:"custom"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": templates.Compose(req.Style, req.Custom)})
}

type generateRequest struct {
	Prompt      string   `json:"prompt"`
	Source      string   `json:"source"`
	Temperature *float64 `json:"temperature"`
}

func (h *Handler) bindGenerate(c *gin.Context) (generateRequest, bool) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameters"})
		return req, false
	}
	if strings.TrimSpace(req.Source) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no extracted text; upload a PDF first"})
		return req, false
	}
	if strings.TrimSpace(req.Prompt) == "" {
		req.Prompt = templates.Compose("", "")
	}
	if req.Temperature == nil {
		t := h.Settings.DefaultTemperature
		req.Temperature = &t
	}
	if *req.Temperature < 0 {
		*req.Temperature = 0
	}
	if *req.Temperature > 1 {
		*req.Temperature = 1
	}
	return req, true
}

// Generate runs one completion and returns the notes. Any API error is
// surfaced verbatim with a 502; the client may simply submit again.
func (h *Handler) Generate(c *gin.Context) {
	req, ok := h.bindGenerate(c)
	if !ok {
		return
	}
	id := uuid.NewString()
	start := time.Now()
	out, err := h.AI.GenerateNotes(c, req.Prompt, req.Source, *req.Temperature)
	if err != nil {
		log.Printf("ERROR GenerateNotes: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	log.Printf("{\"event\":\"generate\",\"id\":%q,\"chars\":%d,\"elapsed_ms\":%d}", id, len(out), time.Since(start).Milliseconds())
	c.Header("X-Generate-Ms", time.Since(start).String())
	c.JSON(http.StatusOK, gin.H{"id": id, "notes": out})
}

// GenerateStream is the SSE variant of Generate.
func (h *Handler) GenerateStream(c *gin.Context) {
	req, ok := h.bindGenerate(c)
	if !ok {
		return
	}
	stream, err := h.AI.StreamNotes(c, req.Prompt, req.Source, *req.Temperature)
	if err != nil {
		log.Printf("ERROR StreamNotes: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	sse.Stream(c, stream)
}

// Download turns generated notes into a file attachment. Both formats
// carry identical bytes; only the name and media type differ.
func (h *Handler) Download(c *gin.Context) {
	var req struct {
		Notes  string `json:"notes"`
		Format string `json:"format"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Notes == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "notes content is required"})
		return
	}
	var name, mime string
	switch req.Format {
	case "md":
		name, mime = "notes.md", "text/markdown"
	case "txt":
		name, mime = "notes.txt", "text/plain"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be md or txt"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, mime+"; charset=utf-8", []byte(req.Notes))
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"key_configured": h.KeyOK,
		"model":          h.Settings.Model,
	})
}
