package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

func TestValidateRevisionTransition(t *testing.T) {
	tests := []struct {
		from    domain.RevisionStatus
		to      domain.RevisionStatus
		allowed bool
	}{
		{domain.RevisionStatusDraft, domain.RevisionStatusPending, true},
		{domain.RevisionStatusPending, domain.RevisionStatusApproved, true},
		{domain.RevisionStatusPending, domain.RevisionStatusRejected, true},
		{domain.RevisionStatusDraft, domain.RevisionStatusApproved, false},
		{domain.RevisionStatusApproved, domain.RevisionStatusPending, false},
		{domain.RevisionStatusRejected, domain.RevisionStatusPending, false},
		{domain.RevisionStatusApproved, domain.RevisionStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			err := ValidateRevisionTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
			}
		})
	}
}

func TestValidateEntryTransition(t *testing.T) {
	tests := []struct {
		from    domain.EntryStatus
		to      domain.EntryStatus
		allowed bool
	}{
		{domain.EntryStatusUnpublished, domain.EntryStatusPublished, true},
		{domain.EntryStatusUnpublished, domain.EntryStatusRejected, true},
		{domain.EntryStatusPublished, domain.EntryStatusPublished, true},
		{domain.EntryStatusRejected, domain.EntryStatusPublished, true},
		{domain.EntryStatusPublished, domain.EntryStatusRejected, false},
		{domain.EntryStatusPublished, domain.EntryStatusUnpublished, false},
		{domain.EntryStatusRejected, domain.EntryStatusUnpublished, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			err := ValidateEntryTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
			}
		})
	}
}
