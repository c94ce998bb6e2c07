package domain

import "time"

// RevisionStatus represents the lifecycle status of a revision.
type RevisionStatus string

const (
	RevisionStatusDraft    RevisionStatus = "draft"
	RevisionStatusPending  RevisionStatus = "pending"
	RevisionStatusApproved RevisionStatus = "approved"
	RevisionStatusRejected RevisionStatus = "rejected"
)

// ValidRevisionStatuses contains all valid revision statuses.
var ValidRevisionStatuses = []RevisionStatus{
	RevisionStatusDraft,
	RevisionStatusPending,
	RevisionStatusApproved,
	RevisionStatusRejected,
}

// IsValidRevisionStatus checks if a revision status is valid.
func IsValidRevisionStatus(status RevisionStatus) bool {
	for _, s := range ValidRevisionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DictionaryContent is the kind-specific payload of a dictionary revision.
type DictionaryContent struct {
	Term            string `json:"term"`
	Syllabication   string `json:"syllabication,omitempty"`
	Phonetic        string `json:"phonetic,omitempty"`
	PartOfSpeech    string `json:"part_of_speech,omitempty"`
	Meaning         string `json:"meaning"`
	ExampleSentence string `json:"example_sentence,omitempty"`
	Etymology       string `json:"etymology,omitempty"`
	Variant         string `json:"variant,omitempty"`
}

// FolkloreContent is the kind-specific payload of a folklore revision.
type FolkloreContent struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	Category     string `json:"category"`
	Municipality string `json:"municipality,omitempty"`
	Variant      string `json:"variant,omitempty"`
}

// ValidPartsOfSpeech contains all valid dictionary parts of speech.
var ValidPartsOfSpeech = []string{"noun", "verb", "adjective", "adverb", "other"}

// ValidCategories contains all valid folklore categories.
var ValidCategories = []string{"myth", "legend", "laji", "poem", "proverb", "idiom"}

// ValidVariants contains all valid language variants.
var ValidVariants = []string{"isamurong", "ivasay", "itbayaten", "isabtang", "general"}

// Content is the tagged variant holding exactly one kind-specific payload.
type Content struct {
	Dictionary *DictionaryContent `json:"dictionary,omitempty"`
	Folklore   *FolkloreContent   `json:"folklore,omitempty"`
}

// Headline returns the display title of the content: the dictionary term or
// the folklore title.
func (c Content) Headline() string {
	switch {
	case c.Dictionary != nil:
		return c.Dictionary.Term
	case c.Folklore != nil:
		return c.Folklore.Title
	}
	return ""
}

// Provenance holds the self-attestation flags and free-text source fields
// owned exclusively by a revision.
type Provenance struct {
	Source            string `json:"source"`
	SelfKnowledge     bool   `json:"self_knowledge"`
	MediaURL          string `json:"media_url,omitempty"`
	MediaSource       string `json:"media_source,omitempty"`
	SelfProducedMedia bool   `json:"self_produced_media"`
}

// Revision is a proposed content snapshot. EntryID is nil for first-time
// submissions; ReviewRound is nil until the entry is flagged for re-review.
// Only the owning contributor may mutate a revision while it is a draft;
// once pending, content is immutable until a terminal decision.
type Revision struct {
	ID          string         `json:"id"`
	EntryID     *string        `json:"entry_id,omitempty"`
	Kind        Kind           `json:"kind"`
	Content     Content        `json:"content"`
	Provenance  Provenance     `json:"provenance"`
	Status      RevisionStatus `json:"status"`
	ReviewRound *int           `json:"review_round,omitempty"`
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty"`
}

// Round returns the revision's review round, 0 for first submissions.
func (r *Revision) Round() int {
	if r.ReviewRound == nil {
		return 0
	}
	return *r.ReviewRound
}
