package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/middleware"
	"github.com/pitelleadami/ChirinIvatan/internal/service"
)

// ReviewHandler handles reviewer-facing decision requests.
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// DecideRequest is the JSON body for a review decision.
type DecideRequest struct {
	Decision string `json:"decision"`
	Notes    string `json:"notes"`
}

// ReviewResponse represents a recorded review in the API response.
type ReviewResponse struct {
	ID           string `json:"id"`
	RevisionID   string `json:"revision_id"`
	ReviewerID   string `json:"reviewer_id"`
	ReviewerRole string `json:"reviewer_role"`
	Decision     string `json:"decision"`
	Notes        string `json:"notes,omitempty"`
	Round        int    `json:"round"`
	CreatedAt    string `json:"created_at"`
}

// toReviewResponse converts a domain.Review to a ReviewResponse.
func toReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		RevisionID:   review.RevisionID,
		ReviewerID:   review.ReviewerID,
		ReviewerRole: string(review.ReviewerRole),
		Decision:     string(review.Decision),
		Notes:        review.Notes,
		Round:        review.Round,
		CreatedAt:    review.CreatedAt.Format(TimeFormat),
	}
}

// Decide handles POST /api/v1/revisions/:id/decision
func (h *ReviewHandler) Decide(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be valid JSON"})
		return
	}
	if req.Decision == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision is required"})
		return
	}

	requestID := middleware.GetRequestID(c)
	result, err := h.reviewService.Decide(c.Request.Context(), caller, id, domain.Decision(req.Decision), req.Notes, requestID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMyReviews handles GET /api/v1/reviews
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.MyReviews(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}

	c.JSON(http.StatusOK, gin.H{"reviews": responses})
}
