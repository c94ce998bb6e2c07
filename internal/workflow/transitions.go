package workflow

import (
	"fmt"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

// revisionTransitions is the complete transition table for revisions.
// No revision status change is allowed outside this table.
var revisionTransitions = map[domain.RevisionStatus][]domain.RevisionStatus{
	domain.RevisionStatusDraft:   {domain.RevisionStatusPending},
	domain.RevisionStatusPending: {domain.RevisionStatusApproved, domain.RevisionStatusRejected},
}

// entryTransitions is the complete transition table for entries. An entry is
// born published; published stays published across re-reviews (a re-review
// replaces the current revision, never unpublishes), and a rejected entry
// can only return through a later approved round.
var entryTransitions = map[domain.EntryStatus][]domain.EntryStatus{
	domain.EntryStatusUnpublished: {domain.EntryStatusPublished, domain.EntryStatusRejected},
	domain.EntryStatusPublished:   {domain.EntryStatusPublished},
	domain.EntryStatusRejected:    {domain.EntryStatusPublished},
}

// ValidateRevisionTransition returns an invalid_state error when from→to is
// not in the revision transition table.
func ValidateRevisionTransition(from, to domain.RevisionStatus) error {
	for _, allowed := range revisionTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return domain.NewError(domain.KindInvalidState,
		fmt.Sprintf("revision cannot move from %s to %s", from, to))
}

// ValidateEntryTransition returns an invalid_state error when from→to is not
// in the entry transition table.
func ValidateEntryTransition(from, to domain.EntryStatus) error {
	for _, allowed := range entryTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return domain.NewError(domain.KindInvalidState,
		fmt.Sprintf("entry cannot move from %s to %s", from, to))
}
