// Package workflow holds the pure review-workflow logic: quorum evaluation,
// the revision and entry state transition tables, and provenance masking.
// Persistence-side atomicity lives in the repository layer; this package is
// side-effect free.
package workflow

import "github.com/pitelleadami/ChirinIvatan/internal/domain"

// Outcome is the result of evaluating a revision-round's ledger after a
// decision is recorded.
type Outcome string

const (
	// OutcomePending means insufficient approvals so far and no reject or
	// flag seen.
	OutcomePending Outcome = "pending"
	// OutcomeQuorumApproved means the running approve count satisfies the
	// quorum requirement.
	OutcomeQuorumApproved Outcome = "quorum_approved"
	// OutcomeRejected means a reject was recorded; a single reject is an
	// immediate veto regardless of prior approvals.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFlagged means a flag was recorded against a published entry,
	// opening a new re-review round.
	OutcomeFlagged Outcome = "flagged"
)

// DecisionResult reports the committed effect of one recorded decision.
type DecisionResult struct {
	Outcome        Outcome               `json:"outcome"`
	RevisionID     string                `json:"revision_id"`
	RevisionStatus domain.RevisionStatus `json:"revision_status"`
	EntryID        *string               `json:"entry_id,omitempty"`
	EntryStatus    *domain.EntryStatus   `json:"entry_status,omitempty"`
	Round          int                   `json:"round"`
	// RereviewRevisionID is set when a flag opened a new round; it names
	// the pending clone that now carries the re-review.
	RereviewRevisionID *string `json:"rereview_revision_id,omitempty"`
}
