package domain

import "time"

// Role is the caller's role as reported by the identity provider.
type Role string

const (
	RoleContributor Role = "contributor"
	RoleReviewer    Role = "reviewer"
	RoleAdmin       Role = "admin"
)

// ValidRoles contains all valid roles.
var ValidRoles = []Role{RoleContributor, RoleReviewer, RoleAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanReview reports whether the role may post review decisions.
func (r Role) CanReview() bool {
	return r == RoleReviewer || r == RoleAdmin
}

// Identity is the caller identity supplied by the external identity provider.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// Decision is a single reviewer decision against a revision-round.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionFlag    Decision = "flag"
)

// ValidDecisions contains all valid decisions.
var ValidDecisions = []Decision{DecisionApprove, DecisionReject, DecisionFlag}

// IsValidDecision checks if a decision is valid.
func IsValidDecision(d Decision) bool {
	for _, v := range ValidDecisions {
		if v == d {
			return true
		}
	}
	return false
}

// RequiresNotes reports whether the decision must carry reviewer notes.
func (d Decision) RequiresNotes() bool {
	return d == DecisionReject || d == DecisionFlag
}

// Review is one reviewer's decision against one revision-round. Reviews are
// append-only and never mutated once recorded; at most one review exists per
// (reviewer, revision, round).
type Review struct {
	ID           string    `json:"id"`
	RevisionID   string    `json:"revision_id"`
	ReviewerID   string    `json:"reviewer_id"`
	ReviewerRole Role      `json:"reviewer_role"`
	Decision     Decision  `json:"decision"`
	Notes        string    `json:"notes,omitempty"`
	Round        int       `json:"round"`
	CreatedAt    time.Time `json:"created_at"`
}
