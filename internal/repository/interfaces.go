package repository

import (
	"context"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/workflow"
)

// RevisionRepository defines methods for revision data access.
type RevisionRepository interface {
	Create(ctx context.Context, rev *domain.Revision) error
	Get(ctx context.Context, id string) (*domain.Revision, error)
	Update(ctx context.Context, rev *domain.Revision) error
	// UpdateStatus moves a revision from one status to another with
	// optimistic concurrency; it reports whether a row was updated.
	UpdateStatus(ctx context.Context, id string, from, to domain.RevisionStatus) (bool, error)
	ListByCreator(ctx context.Context, createdBy string) ([]domain.Revision, error)
	// ListPending returns the pending queue for a kind: first submissions
	// when rereview is false, re-review rounds when true.
	ListPending(ctx context.Context, kind domain.Kind, rereview bool) ([]domain.Revision, error)
}

// EntryRepository defines methods for entry data access.
type EntryRepository interface {
	Get(ctx context.Context, id string) (*domain.Entry, error)
	GetPublished(ctx context.Context, id string) (*domain.EntryWithRevision, error)
	// ListPublished returns published entries with their current revisions;
	// an empty kind matches all kinds.
	ListPublished(ctx context.Context, kind domain.Kind) ([]domain.EntryWithRevision, error)
}

// ReviewRepository defines methods for the append-only review ledger.
type ReviewRepository interface {
	ListByReviewer(ctx context.Context, reviewerID string, limit int) ([]domain.Review, error)
	ListForRound(ctx context.Context, revisionID string, round int) ([]domain.Review, error)
}

// WorkflowRepository applies one review decision atomically: ledger append,
// quorum evaluation, and the resulting state transition happen in a single
// transaction serialized per revision row.
type WorkflowRepository interface {
	Decide(ctx context.Context, revisionID string, caller domain.Identity, decision domain.Decision, notes string) (*workflow.DecisionResult, error)
}

// ContributionRepository defines read access to contribution awards.
type ContributionRepository interface {
	SummaryForUser(ctx context.Context, userID string) (*domain.ContributionSummary, error)
}
