package qabank

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"applyai-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches Q&A bank routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/qa-bank", h.create)
	rg.GET("/qa-bank", h.list)
	rg.GET("/qa-bank/:id", h.get)
	rg.PUT("/qa-bank/:id", h.update)
	rg.DELETE("/qa-bank/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	entry, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", validationMessage(err), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to create Q&A entry", nil)
		return
	}

	c.Set("entryId", entry.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Q&A entry created successfully",
		"entry":   toResponse(entry),
	})
}

func (h *Handler) list(c *gin.Context) {
	var list []Entry
	var err error

	if category := c.Query("category"); category != "" {
		list, err = h.Svc.ListByCategory(c.Request.Context(), category)
	} else {
		list, err = h.Svc.List(c.Request.Context())
	}

	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", validationMessage(err), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch Q&A entries", nil)
		return
	}
	respond.OK(c, gin.H{"entries": toResponseList(list)})
}

func (h *Handler) get(c *gin.Context) {
	entry, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Q&A entry not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch Q&A entry", nil)
		return
	}
	respond.OK(c, gin.H{"entry": toResponse(entry)})
}

func (h *Handler) update(c *gin.Context) {
	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	entry, err := h.Svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", validationMessage(err), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Q&A entry not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to update Q&A entry", nil)
		}
		return
	}

	c.Set("entryId", entry.ID)
	respond.OK(c, gin.H{
		"message": "Q&A entry updated successfully",
		"entry":   toResponse(entry),
	})
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete Q&A entry", nil)
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "not_found", "Q&A entry not found", nil)
		return
	}
	respond.OK(c, gin.H{"message": "Q&A entry deleted successfully"})
}

// validationMessage strips the sentinel prefix so clients see the human
// message only.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := ErrInvalidInput.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
