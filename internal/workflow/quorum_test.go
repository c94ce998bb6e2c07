package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

func approve(id string, role domain.Role) Vote {
	return Vote{ReviewerID: id, Role: role, Decision: domain.DecisionApprove}
}

func reject(id string, role domain.Role) Vote {
	return Vote{ReviewerID: id, Role: role, Decision: domain.DecisionReject}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		votes []Vote
		want  Outcome
	}{
		{
			name:  "no votes",
			votes: nil,
			want:  OutcomePending,
		},
		{
			name:  "single reviewer approval stays pending",
			votes: []Vote{approve("r1", domain.RoleReviewer)},
			want:  OutcomePending,
		},
		{
			name:  "single admin approval stays pending",
			votes: []Vote{approve("a1", domain.RoleAdmin)},
			want:  OutcomePending,
		},
		{
			name:  "two reviewers reach quorum",
			votes: []Vote{approve("r1", domain.RoleReviewer), approve("r2", domain.RoleReviewer)},
			want:  OutcomeQuorumApproved,
		},
		{
			name:  "reviewer plus admin reach quorum",
			votes: []Vote{approve("r1", domain.RoleReviewer), approve("a1", domain.RoleAdmin)},
			want:  OutcomeQuorumApproved,
		},
		{
			name:  "two admins never reach quorum",
			votes: []Vote{approve("a1", domain.RoleAdmin), approve("a2", domain.RoleAdmin)},
			want:  OutcomePending,
		},
		{
			name:  "same reviewer counted once",
			votes: []Vote{approve("r1", domain.RoleReviewer), approve("r1", domain.RoleReviewer)},
			want:  OutcomePending,
		},
		{
			name:  "reject is an immediate veto",
			votes: []Vote{reject("r1", domain.RoleReviewer)},
			want:  OutcomeRejected,
		},
		{
			name: "reject after approvals still vetoes",
			votes: []Vote{
				approve("r1", domain.RoleReviewer),
				approve("a1", domain.RoleAdmin),
				reject("r2", domain.RoleReviewer),
			},
			want: OutcomeRejected,
		},
		{
			name: "flag vote does not count toward quorum",
			votes: []Vote{
				{ReviewerID: "a1", Role: domain.RoleAdmin, Decision: domain.DecisionFlag},
				approve("r1", domain.RoleReviewer),
			},
			want: OutcomePending,
		},
		{
			name: "three voters satisfy quorum on first qualifying pair",
			votes: []Vote{
				approve("a1", domain.RoleAdmin),
				approve("r1", domain.RoleReviewer),
				approve("r2", domain.RoleReviewer),
			},
			want: OutcomeQuorumApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.votes))
		})
	}
}

func TestQuorumMet(t *testing.T) {
	tests := []struct {
		reviewers int
		admins    int
		want      bool
	}{
		{0, 0, false},
		{1, 0, false},
		{0, 1, false},
		{0, 2, false},
		{1, 1, true},
		{2, 0, true},
		{3, 2, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuorumMet(tt.reviewers, tt.admins),
			"reviewers=%d admins=%d", tt.reviewers, tt.admins)
	}
}
