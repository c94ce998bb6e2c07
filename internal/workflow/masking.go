package workflow

import "github.com/pitelleadami/ChirinIvatan/internal/domain"

// MaskProvenance builds the public projection of a published entry. The
// source is replaced with the hidden sentinel when the backing revision is
// self-knowledge; the media source likewise when the media is self-produced.
// The projection is computed fresh on every read so that provenance flag
// changes in later revisions take effect immediately.
func MaskProvenance(entry domain.Entry, revision domain.Revision) domain.PublicEntry {
	source := revision.Provenance.Source
	if revision.Provenance.SelfKnowledge {
		source = domain.HiddenProvenance
	}

	mediaSource := revision.Provenance.MediaSource
	if revision.Provenance.SelfProducedMedia && revision.Provenance.MediaURL != "" {
		mediaSource = domain.HiddenProvenance
	}

	return domain.PublicEntry{
		EntryID:     entry.ID,
		Kind:        entry.Kind,
		Status:      entry.Status,
		Content:     revision.Content,
		Source:      source,
		MediaURL:    revision.Provenance.MediaURL,
		MediaSource: mediaSource,
		ActiveRound: entry.ActiveRound,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
