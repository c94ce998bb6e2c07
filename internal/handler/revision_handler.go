package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/middleware"
	"github.com/pitelleadami/ChirinIvatan/internal/service"
)

// RevisionHandler handles contributor-facing revision requests.
type RevisionHandler struct {
	revisionService service.RevisionServiceInterface
}

// NewRevisionHandler creates a new RevisionHandler.
func NewRevisionHandler(revisionService service.RevisionServiceInterface) *RevisionHandler {
	return &RevisionHandler{
		revisionService: revisionService,
	}
}

// RevisionResponse represents a revision in the API response.
type RevisionResponse struct {
	ID          string            `json:"id"`
	EntryID     *string           `json:"entry_id,omitempty"`
	Kind        string            `json:"kind"`
	Content     domain.Content    `json:"content"`
	Provenance  domain.Provenance `json:"provenance"`
	Status      string            `json:"status"`
	ReviewRound *int              `json:"review_round,omitempty"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	ApprovedAt  *string           `json:"approved_at,omitempty"`
}

// toRevisionResponse converts a domain.Revision to a RevisionResponse.
func toRevisionResponse(rev *domain.Revision) RevisionResponse {
	response := RevisionResponse{
		ID:          rev.ID,
		EntryID:     rev.EntryID,
		Kind:        string(rev.Kind),
		Content:     rev.Content,
		Provenance:  rev.Provenance,
		Status:      string(rev.Status),
		ReviewRound: rev.ReviewRound,
		CreatedBy:   rev.CreatedBy,
		CreatedAt:   rev.CreatedAt.Format(TimeFormat),
		UpdatedAt:   rev.UpdatedAt.Format(TimeFormat),
	}
	if rev.ApprovedAt != nil {
		approvedAt := rev.ApprovedAt.Format(TimeFormat)
		response.ApprovedAt = &approvedAt
	}
	return response
}

// parseBoolField parses an optional boolean form field, defaulting to false.
func parseBoolField(c *gin.Context, field string) (bool, bool) {
	raw := c.PostForm(field)
	if raw == "" {
		return false, true
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " must be a boolean"})
		return false, false
	}
	return parsed, true
}

// parseRevisionForm reads the multipart revision form shared by create and
// update. The content field is a JSON document; the media file is optional
// and, when present, is returned for the caller to close.
func parseRevisionForm(c *gin.Context) (service.RevisionInput, multipart.File, bool) {
	var input service.RevisionInput

	kind := c.PostForm("kind")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind is required"})
		return input, nil, false
	}
	if !domain.IsValidKind(domain.Kind(kind)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be one of: dictionary, folklore"})
		return input, nil, false
	}
	input.Kind = domain.Kind(kind)

	contentJSON := c.PostForm("content")
	if contentJSON == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return input, nil, false
	}
	if err := json.Unmarshal([]byte(contentJSON), &input.Content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content must be a valid JSON document"})
		return input, nil, false
	}

	input.Provenance = domain.Provenance{
		Source:      c.PostForm("source"),
		MediaSource: c.PostForm("media_source"),
	}
	selfKnowledge, ok := parseBoolField(c, "self_knowledge")
	if !ok {
		return input, nil, false
	}
	selfProducedMedia, ok := parseBoolField(c, "self_produced_media")
	if !ok {
		return input, nil, false
	}
	input.Provenance.SelfKnowledge = selfKnowledge
	input.Provenance.SelfProducedMedia = selfProducedMedia

	file, header, err := c.Request.FormFile("media")
	if err != nil {
		return input, nil, true
	}
	if header.Size > MaxMediaSize {
		file.Close()
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file exceeds the maximum allowed size"})
		return input, nil, false
	}
	input.Media = &service.MediaUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	}

	return input, file, true
}

// CreateRevision handles POST /api/v1/revisions
func (h *RevisionHandler) CreateRevision(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	input, file, ok := parseRevisionForm(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	requestID := middleware.GetRequestID(c)
	rev, err := h.revisionService.CreateDraft(c.Request.Context(), caller, input, requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRevisionResponse(rev))
}

// UpdateRevision handles PATCH /api/v1/revisions/:id
func (h *RevisionHandler) UpdateRevision(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	input, file, ok := parseRevisionForm(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	requestID := middleware.GetRequestID(c)
	rev, err := h.revisionService.UpdateDraft(c.Request.Context(), caller, id, input, requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRevisionResponse(rev))
}

// SubmitRevision handles POST /api/v1/revisions/:id/submit
func (h *RevisionHandler) SubmitRevision(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	requestID := middleware.GetRequestID(c)
	rev, err := h.revisionService.Submit(c.Request.Context(), caller, id, requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRevisionResponse(rev))
}

// GetRevision handles GET /api/v1/revisions/:id
func (h *RevisionHandler) GetRevision(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	rev, err := h.revisionService.Get(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRevisionResponse(rev))
}

// ListMyRevisions handles GET /api/v1/revisions
func (h *RevisionHandler) ListMyRevisions(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	revs, err := h.revisionService.ListMine(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]RevisionResponse, 0, len(revs))
	for i := range revs {
		responses = append(responses, toRevisionResponse(&revs[i]))
	}

	c.JSON(http.StatusOK, gin.H{"revisions": responses})
}
