package domain

import "time"

// ContributionType classifies an approved contribution award.
type ContributionType string

const (
	ContributionDictionaryTerm ContributionType = "dictionary_term"
	ContributionFolkloreEntry  ContributionType = "folklore_entry"
	ContributionRevision       ContributionType = "revision"
)

// ContributionEvent records an approval-time award to a contributor.
// Awards are historical: granted once per (user, entry, type) and never
// decremented by later rejections or re-reviews.
type ContributionEvent struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	EntryID    string           `json:"entry_id"`
	RevisionID string           `json:"revision_id"`
	Type       ContributionType `json:"type"`
	AwardedAt  time.Time        `json:"awarded_at"`
}

// ContributionSummary aggregates a contributor's awards.
type ContributionSummary struct {
	DictionaryTerms    int        `json:"dictionary_terms"`
	FolkloreEntries    int        `json:"folklore_entries"`
	Revisions          int        `json:"revisions"`
	Total              int        `json:"total"`
	LastContributionAt *time.Time `json:"last_contribution_at,omitempty"`
}
