package service

import (
	"context"
	"io"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/workflow"
)

// MediaUpload carries an attachment uploaded alongside a revision.
type MediaUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// RevisionInput is the contributor-supplied part of a revision.
type RevisionInput struct {
	Kind       domain.Kind
	Content    domain.Content
	Provenance domain.Provenance
	Media      *MediaUpload
}

// RevisionServiceInterface defines the contributor-facing revision operations.
// Used for dependency injection and mocking in tests.
type RevisionServiceInterface interface {
	// CreateDraft creates a new draft revision owned by the caller.
	CreateDraft(ctx context.Context, caller domain.Identity, input RevisionInput, requestID string) (*domain.Revision, error)
	// UpdateDraft replaces the content of a draft the caller owns.
	UpdateDraft(ctx context.Context, caller domain.Identity, id string, input RevisionInput, requestID string) (*domain.Revision, error)
	// Submit moves a draft into the review queue.
	Submit(ctx context.Context, caller domain.Identity, id, requestID string) (*domain.Revision, error)
	// Get returns a single revision visible to the caller.
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.Revision, error)
	// ListMine returns the caller's revisions, newest first.
	ListMine(ctx context.Context, caller domain.Identity) ([]domain.Revision, error)
}

// ReviewServiceInterface defines the reviewer-facing decision operations.
// Used for dependency injection and mocking in tests.
type ReviewServiceInterface interface {
	// Decide records one review decision and returns its workflow effect.
	Decide(ctx context.Context, caller domain.Identity, revisionID string, decision domain.Decision, notes, requestID string) (*workflow.DecisionResult, error)
	// MyReviews returns the caller's recent decisions, newest first.
	MyReviews(ctx context.Context, caller domain.Identity) ([]domain.Review, error)
}

// QueueView is the review queue for one content kind: what awaits a first
// review, what awaits a re-review, and what is live and therefore flaggable.
type QueueView struct {
	PendingSubmissions []domain.Revision          `json:"pending_submissions"`
	PendingRereviews   []domain.Revision          `json:"pending_rereviews"`
	PublishedEntries   []domain.EntryWithRevision `json:"published_entries"`
}

// DashboardView is the role-dependent landing projection: reviewers see the
// review queues, everyone sees their own activity.
type DashboardView struct {
	Dictionary      *QueueView                  `json:"dictionary,omitempty"`
	Folklore        *QueueView                  `json:"folklore,omitempty"`
	MyReviews       []domain.Review             `json:"my_reviews,omitempty"`
	MyContributions *domain.ContributionSummary `json:"my_contributions"`
}

// DashboardServiceInterface builds the landing dashboard.
// Used for dependency injection and mocking in tests.
type DashboardServiceInterface interface {
	Overview(ctx context.Context, caller domain.Identity) (*DashboardView, error)
}

// EntryServiceInterface defines the public read surface over published
// entries. Used for dependency injection and mocking in tests.
type EntryServiceInterface interface {
	// GetPublic returns the masked projection of one published entry.
	GetPublic(ctx context.Context, id string) (*domain.PublicEntry, error)
	// ListPublic returns masked projections, optionally filtered by kind.
	ListPublic(ctx context.Context, kind string) ([]domain.PublicEntry, error)
	// MyContributions returns the caller's contribution summary.
	MyContributions(ctx context.Context, caller domain.Identity) (*domain.ContributionSummary, error)
}
