package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pitelleadami/ChirinIvatan/internal/service"
)

// EntryHandler serves the public read surface over published entries.
type EntryHandler struct {
	entryService service.EntryServiceInterface
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryService service.EntryServiceInterface) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// GetEntry handles GET /api/v1/entries/:id
func (h *EntryHandler) GetEntry(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	entry, err := h.entryService.GetPublic(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListEntries handles GET /api/v1/entries
func (h *EntryHandler) ListEntries(c *gin.Context) {
	kind := c.Query("kind")

	entries, err := h.entryService.ListPublic(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// MyContributions handles GET /api/v1/contributions
func (h *EntryHandler) MyContributions(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	summary, err := h.entryService.MyContributions(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
