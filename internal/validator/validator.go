package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

var (
	validPartsOfSpeech = toInterfaces(domain.ValidPartsOfSpeech)
	validCategories    = toInterfaces(domain.ValidCategories)
	validVariants      = toInterfaces(domain.ValidVariants)
)

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Validator provides validation methods for revision payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateContent validates the kind-specific content payload of a revision.
// The content must carry exactly the payload matching the declared kind.
func (v *Validator) ValidateContent(kind domain.Kind, content domain.Content) error {
	switch kind {
	case domain.KindDictionary:
		if content.Dictionary == nil || content.Folklore != nil {
			return validation.Errors{
				"content": validation.NewError("content_kind_mismatch", "dictionary revisions require dictionary content"),
			}
		}
		return v.validateDictionary(content.Dictionary)
	case domain.KindFolklore:
		if content.Folklore == nil || content.Dictionary != nil {
			return validation.Errors{
				"content": validation.NewError("content_kind_mismatch", "folklore revisions require folklore content"),
			}
		}
		return v.validateFolklore(content.Folklore)
	default:
		return validation.Errors{
			"kind": validation.NewError("invalid_kind", "kind must be one of: dictionary, folklore"),
		}
	}
}

func (v *Validator) validateDictionary(c *domain.DictionaryContent) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Term,
			validation.Required.Error("term_required"),
		),
		validation.Field(&c.Meaning,
			validation.Required.Error("meaning_required"),
		),
		validation.Field(&c.PartOfSpeech,
			validation.In(validPartsOfSpeech...).Error("invalid_part_of_speech"),
		),
		validation.Field(&c.Variant,
			validation.In(validVariants...).Error("invalid_variant"),
		),
	)
}

func (v *Validator) validateFolklore(c *domain.FolkloreContent) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&c.Body,
			validation.Required.Error("body_required"),
		),
		validation.Field(&c.Category,
			validation.Required.Error("category_required"),
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&c.Variant,
			validation.In(validVariants...).Error("invalid_variant"),
		),
	)
}

// ValidateProvenance enforces the submission-time provenance rules: a source
// is required unless the contributor attests self-knowledge, and a media
// source is required when media is attached and not self-produced.
func (v *Validator) ValidateProvenance(p domain.Provenance) error {
	errs := validation.Errors{}

	if !p.SelfKnowledge && p.Source == "" {
		errs["source"] = validation.NewError("source_required", "source is required unless self_knowledge is set")
	}
	if p.MediaURL != "" {
		if err := validation.Validate(p.MediaURL, is.URL); err != nil {
			errs["media_url"] = validation.NewError("invalid_media_url", "media_url must be a valid URL")
		}
		if !p.SelfProducedMedia && p.MediaSource == "" {
			errs["media_source"] = validation.NewError("media_source_required", "media_source is required when media is attached and not self-produced")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateForSubmit runs the full submission gate over a draft revision:
// content completeness plus provenance rules.
func (v *Validator) ValidateForSubmit(rev *domain.Revision) error {
	if err := v.ValidateContent(rev.Kind, rev.Content); err != nil {
		return err
	}
	return v.ValidateProvenance(rev.Provenance)
}

// ToDomainError converts an ozzo validation error into the service-level
// validation error carrying a stable kind and field details.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}
	return domain.WrapError(domain.KindValidation, err.Error(), err)
}
