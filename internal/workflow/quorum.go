package workflow

import "github.com/pitelleadami/ChirinIvatan/internal/domain"

// Vote is one recorded decision within a single revision-round.
type Vote struct {
	ReviewerID string
	Role       domain.Role
	Decision   domain.Decision
}

// QuorumMet reports whether the approval quorum is satisfied: two distinct
// reviewer-role approvers, or one reviewer plus one admin. Two admins alone
// never satisfy quorum.
func QuorumMet(reviewerApprovers, adminApprovers int) bool {
	return reviewerApprovers >= 2 || (reviewerApprovers >= 1 && adminApprovers >= 1)
}

// Evaluate computes the ledger outcome for one round's votes. A reject is an
// immediate veto. Approvals are counted by distinct reviewer identity, split
// by role. Flag votes open the round and are not counted as approvals.
func Evaluate(votes []Vote) Outcome {
	reviewerIDs := make(map[string]struct{})
	adminIDs := make(map[string]struct{})

	for _, v := range votes {
		switch v.Decision {
		case domain.DecisionReject:
			return OutcomeRejected
		case domain.DecisionApprove:
			switch v.Role {
			case domain.RoleAdmin:
				adminIDs[v.ReviewerID] = struct{}{}
			case domain.RoleReviewer:
				reviewerIDs[v.ReviewerID] = struct{}{}
			}
		}
	}

	if QuorumMet(len(reviewerIDs), len(adminIDs)) {
		return OutcomeQuorumApproved
	}
	return OutcomePending
}
