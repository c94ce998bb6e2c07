package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

func TestValidateContent_Dictionary(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		content domain.Content
		wantErr bool
	}{
		{
			name: "valid dictionary content",
			content: domain.Content{Dictionary: &domain.DictionaryContent{
				Term:    "vakul",
				Meaning: "traditional headgear woven from voyavoy leaves",
				Variant: "ivasay",
			}},
			wantErr: false,
		},
		{
			name: "missing term",
			content: domain.Content{Dictionary: &domain.DictionaryContent{
				Meaning: "traditional headgear",
			}},
			wantErr: true,
		},
		{
			name: "missing meaning",
			content: domain.Content{Dictionary: &domain.DictionaryContent{
				Term: "vakul",
			}},
			wantErr: true,
		},
		{
			name: "invalid part of speech",
			content: domain.Content{Dictionary: &domain.DictionaryContent{
				Term:         "vakul",
				Meaning:      "headgear",
				PartOfSpeech: "interjection",
			}},
			wantErr: true,
		},
		{
			name: "invalid variant",
			content: domain.Content{Dictionary: &domain.DictionaryContent{
				Term:    "vakul",
				Meaning: "headgear",
				Variant: "tagalog",
			}},
			wantErr: true,
		},
		{
			name:    "missing payload",
			content: domain.Content{},
			wantErr: true,
		},
		{
			name: "folklore payload on dictionary kind",
			content: domain.Content{Folklore: &domain.FolkloreContent{
				Title: "x", Body: "y", Category: "myth",
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateContent(domain.KindDictionary, tt.content)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateContent_Folklore(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		content domain.Content
		wantErr bool
	}{
		{
			name: "valid folklore content",
			content: domain.Content{Folklore: &domain.FolkloreContent{
				Title:        "The Origin of Mount Iraya",
				Body:         "Long ago...",
				Category:     "legend",
				Municipality: "Basco",
			}},
			wantErr: false,
		},
		{
			name: "missing title",
			content: domain.Content{Folklore: &domain.FolkloreContent{
				Body: "Long ago...", Category: "legend",
			}},
			wantErr: true,
		},
		{
			name: "invalid category",
			content: domain.Content{Folklore: &domain.FolkloreContent{
				Title: "x", Body: "y", Category: "ballad",
			}},
			wantErr: true,
		},
		{
			name: "both payloads set",
			content: domain.Content{
				Folklore:   &domain.FolkloreContent{Title: "x", Body: "y", Category: "myth"},
				Dictionary: &domain.DictionaryContent{Term: "a", Meaning: "b"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateContent(domain.KindFolklore, tt.content)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProvenance(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		provenance domain.Provenance
		wantErr    bool
	}{
		{
			name:       "source present",
			provenance: domain.Provenance{Source: "anthology"},
			wantErr:    false,
		},
		{
			name:       "self knowledge waives source",
			provenance: domain.Provenance{SelfKnowledge: true},
			wantErr:    false,
		},
		{
			name:       "missing source without self knowledge",
			provenance: domain.Provenance{},
			wantErr:    true,
		},
		{
			name: "media attached requires media source",
			provenance: domain.Provenance{
				Source:   "anthology",
				MediaURL: "https://media.example/a.mp3",
			},
			wantErr: true,
		},
		{
			name: "self produced media waives media source",
			provenance: domain.Provenance{
				Source:            "anthology",
				MediaURL:          "https://media.example/a.mp3",
				SelfProducedMedia: true,
			},
			wantErr: false,
		},
		{
			name: "media source provided",
			provenance: domain.Provenance{
				Source:      "anthology",
				MediaURL:    "https://media.example/a.mp3",
				MediaSource: "provincial archive",
			},
			wantErr: false,
		},
		{
			name: "invalid media url",
			provenance: domain.Provenance{
				Source:      "anthology",
				MediaURL:    "not a url",
				MediaSource: "archive",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateProvenance(tt.provenance)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateForSubmit(t *testing.T) {
	v := NewValidator()

	rev := &domain.Revision{
		Kind: domain.KindDictionary,
		Content: domain.Content{Dictionary: &domain.DictionaryContent{
			Term:    "tataya",
			Meaning: "small fishing boat",
		}},
		Provenance: domain.Provenance{SelfKnowledge: true},
	}
	require.NoError(t, v.ValidateForSubmit(rev))

	rev.Provenance = domain.Provenance{}
	err := v.ValidateForSubmit(rev)
	require.Error(t, err)

	derr := ToDomainError(err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(derr))
}
