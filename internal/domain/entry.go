package domain

import "time"

// Kind identifies the content kind of an entry or revision.
type Kind string

const (
	KindDictionary Kind = "dictionary"
	KindFolklore   Kind = "folklore"
)

// ValidKinds contains all valid content kinds.
var ValidKinds = []Kind{KindDictionary, KindFolklore}

// IsValidKind checks if a content kind is valid.
func IsValidKind(kind Kind) bool {
	for _, k := range ValidKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// EntryStatus represents the lifecycle status of an entry.
type EntryStatus string

const (
	EntryStatusUnpublished EntryStatus = "unpublished"
	EntryStatusPublished   EntryStatus = "published"
	EntryStatusRejected    EntryStatus = "rejected"
)

// ValidEntryStatuses contains all valid entry statuses.
var ValidEntryStatuses = []EntryStatus{EntryStatusUnpublished, EntryStatusPublished, EntryStatusRejected}

// IsValidEntryStatus checks if an entry status is valid.
func IsValidEntryStatus(status EntryStatus) bool {
	for _, s := range ValidEntryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Entry is the published, addressable unit of content. It is created when a
// first-time revision reaches quorum and is never deleted afterwards.
// CurrentRevisionID is set if and only if Status is published.
type Entry struct {
	ID                string      `json:"id"`
	Kind              Kind        `json:"kind"`
	Status            EntryStatus `json:"status"`
	CurrentRevisionID *string     `json:"current_revision_id,omitempty"`
	ActiveRound       int         `json:"active_round"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// EntryWithRevision pairs a published entry with the revision it renders.
type EntryWithRevision struct {
	Entry           Entry    `json:"entry"`
	CurrentRevision Revision `json:"current_revision"`
}

// HiddenProvenance is the sentinel value substituted for provenance fields
// the contributor attests as their own knowledge or production.
const HiddenProvenance = "hidden"

// PublicEntry is the masked projection of a published entry. Provenance
// fields are redacted per the backing revision's self-attestation flags.
type PublicEntry struct {
	EntryID     string      `json:"entry_id"`
	Kind        Kind        `json:"kind"`
	Status      EntryStatus `json:"status"`
	Content     Content     `json:"content"`
	Source      string      `json:"source"`
	MediaURL    string      `json:"media_url,omitempty"`
	MediaSource string      `json:"media_source,omitempty"`
	ActiveRound int         `json:"active_round"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
