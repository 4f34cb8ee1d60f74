package resumes

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"applyai-backend/internal/shared/server/respond"
	"applyai-backend/internal/shared/telemetry"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	mimePDF       = "application/pdf"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	pdfBase64, ok := h.readPDF(c)
	if !ok {
		return
	}

	resume, err := h.Svc.CreateFromPDF(c.Request.Context(), pdfBase64)
	if err != nil {
		// Upload is the one path where the underlying error message is
		// passed through to the client for diagnosis.
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			telemetry.Error("resume.parse_failed", map[string]any{
				"request_id": c.GetString("requestId"),
				"raw_output": parseErr.Raw,
			})
		}
		respond.Error(c, http.StatusInternalServerError, "extraction_failed", err.Error(), nil)
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Resume parsed and saved successfully",
		"resume":  toResponse(resume),
	})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch resumes", nil)
		return
	}
	respond.OK(c, gin.H{"resumes": toResponseList(list)})
}

func (h *Handler) get(c *gin.Context) {
	resume, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch resume", nil)
		return
	}
	respond.OK(c, gin.H{"resume": toResponse(resume)})
}

// update handles both JSON field edits and multipart re-parse uploads,
// dispatching on the request Content-Type.
func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	contentType := c.GetHeader("Content-Type")

	var resume Resume
	var err error

	if strings.Contains(contentType, "multipart/form-data") {
		pdfBase64, ok := h.readPDF(c)
		if !ok {
			return
		}
		resume, err = h.Svc.Reparse(c.Request.Context(), id, pdfBase64)
	} else {
		var input UpdateInput
		if bindErr := c.ShouldBindJSON(&input); bindErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
			return
		}
		resume, err = h.Svc.Update(c.Request.Context(), id, input)
	}

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to update resume", nil)
		return
	}

	c.Set("resumeId", resume.ID)
	respond.OK(c, gin.H{
		"message": "Resume updated successfully",
		"resume":  toResponse(resume),
	})
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete resume", nil)
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
		return
	}
	respond.OK(c, gin.H{"message": "Resume deleted successfully"})
}

// readPDF pulls the uploaded file out of the multipart form, enforces the
// PDF MIME gate, and returns it base64-encoded for the extraction adapter.
func (h *Handler) readPDF(c *gin.Context) (string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file provided", nil)
		return "", false
	}
	if fileHeader.Header.Get("Content-Type") != mimePDF {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF files are supported", nil)
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Unable to read file", nil)
		return "", false
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Unable to read file", nil)
		return "", false
	}

	return base64.StdEncoding.EncodeToString(raw), true
}
