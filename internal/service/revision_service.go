package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pitelleadami/ChirinIvatan/internal/blobstore"
	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/metrics"
	"github.com/pitelleadami/ChirinIvatan/internal/repository"
	"github.com/pitelleadami/ChirinIvatan/internal/validator"
)

// RevisionService handles the contributor side of the workflow: drafting,
// editing, and submitting revisions. Validation is lenient while a revision
// is a draft; the full submission gate runs on Submit.
type RevisionService struct {
	revisionRepo repository.RevisionRepository
	media        blobstore.Store
	validator    *validator.Validator
}

// NewRevisionService creates a new RevisionService.
func NewRevisionService(revisionRepo repository.RevisionRepository, media blobstore.Store, v *validator.Validator) *RevisionService {
	return &RevisionService{
		revisionRepo: revisionRepo,
		media:        media,
		validator:    v,
	}
}

// CreateDraft creates a new draft revision owned by the caller. Any role may
// contribute. A media attachment, when present, is stored immediately so the
// draft carries its final URL.
func (s *RevisionService) CreateDraft(ctx context.Context, caller domain.Identity, input RevisionInput, requestID string) (*domain.Revision, error) {
	log.Printf("[request_id=%s] Creating %s draft for user %s", requestID, input.Kind, caller.UserID)

	if !domain.IsValidKind(input.Kind) {
		return nil, domain.NewError(domain.KindValidation, "kind must be one of: dictionary, folklore")
	}
	if err := checkContentShape(input.Kind, input.Content); err != nil {
		return nil, err
	}

	provenance := input.Provenance
	if input.Media != nil {
		url, err := s.storeMedia(ctx, input.Media)
		if err != nil {
			return nil, err
		}
		provenance.MediaURL = url
	}

	now := time.Now()
	rev := &domain.Revision{
		ID:         uuid.New().String(),
		Kind:       input.Kind,
		Content:    input.Content,
		Provenance: provenance,
		Status:     domain.RevisionStatusDraft,
		CreatedBy:  caller.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.revisionRepo.Create(ctx, rev); err != nil {
		return nil, err
	}

	log.Printf("[request_id=%s] Draft %s created", requestID, rev.ID)
	return rev, nil
}

// UpdateDraft replaces the content and provenance of a draft the caller owns.
// Pending and decided revisions are immutable.
func (s *RevisionService) UpdateDraft(ctx context.Context, caller domain.Identity, id string, input RevisionInput, requestID string) (*domain.Revision, error) {
	rev, err := s.ownedRevision(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if rev.Status != domain.RevisionStatusDraft {
		return nil, domain.NewError(domain.KindInvalidState, "only draft revisions can be edited")
	}

	if !domain.IsValidKind(input.Kind) {
		return nil, domain.NewError(domain.KindValidation, "kind must be one of: dictionary, folklore")
	}
	if err := checkContentShape(input.Kind, input.Content); err != nil {
		return nil, err
	}

	provenance := input.Provenance
	if input.Media != nil {
		url, err := s.storeMedia(ctx, input.Media)
		if err != nil {
			return nil, err
		}
		provenance.MediaURL = url
	} else if provenance.MediaURL == "" {
		// Keep an attachment stored on a previous save unless the update
		// explicitly clears provenance.
		provenance.MediaURL = rev.Provenance.MediaURL
	}

	rev.Kind = input.Kind
	rev.Content = input.Content
	rev.Provenance = provenance
	rev.UpdatedAt = time.Now()

	if err := s.revisionRepo.Update(ctx, rev); err != nil {
		return nil, err
	}

	log.Printf("[request_id=%s] Draft %s updated", requestID, rev.ID)
	return rev, nil
}

// Submit moves a draft into the review queue. The full submission gate runs
// here: content completeness and the provenance attestation rules.
func (s *RevisionService) Submit(ctx context.Context, caller domain.Identity, id, requestID string) (*domain.Revision, error) {
	rev, err := s.ownedRevision(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if rev.Status != domain.RevisionStatusDraft {
		return nil, domain.NewError(domain.KindInvalidState, "only draft revisions can be submitted")
	}

	if err := s.validator.ValidateForSubmit(rev); err != nil {
		return nil, validator.ToDomainError(err)
	}

	moved, err := s.revisionRepo.UpdateStatus(ctx, rev.ID, domain.RevisionStatusDraft, domain.RevisionStatusPending)
	if err != nil {
		return nil, err
	}
	if !moved {
		// Lost a race with a concurrent submit or decision.
		return nil, domain.NewError(domain.KindInvalidState, "revision is no longer a draft")
	}

	rev.Status = domain.RevisionStatusPending
	metrics.ObserveSubmission(string(rev.Kind))
	log.Printf("[request_id=%s] Revision %s submitted for review (kind=%s)", requestID, rev.ID, rev.Kind)
	return rev, nil
}

// Get returns a revision visible to the caller: its owner, or any reviewer.
func (s *RevisionService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Revision, error) {
	rev, err := s.revisionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, domain.NewError(domain.KindNotFound, "revision not found")
	}
	if rev.CreatedBy != caller.UserID && !caller.Role.CanReview() {
		return nil, domain.NewError(domain.KindPermissionDenied, "you cannot view this revision")
	}
	return rev, nil
}

// ListMine returns the caller's revisions, newest first.
func (s *RevisionService) ListMine(ctx context.Context, caller domain.Identity) ([]domain.Revision, error) {
	return s.revisionRepo.ListByCreator(ctx, caller.UserID)
}

func (s *RevisionService) ownedRevision(ctx context.Context, caller domain.Identity, id string) (*domain.Revision, error) {
	rev, err := s.revisionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, domain.NewError(domain.KindNotFound, "revision not found")
	}
	if rev.CreatedBy != caller.UserID {
		return nil, domain.NewError(domain.KindPermissionDenied, "only the owner can modify a revision")
	}
	return rev, nil
}

func (s *RevisionService) storeMedia(ctx context.Context, media *MediaUpload) (string, error) {
	url, err := s.media.Save(ctx, media.Filename, media.Reader)
	if err != nil {
		metrics.ObserveMediaUpload("error", 0)
		return "", err
	}
	metrics.ObserveMediaUpload("success", media.Size)
	return url, nil
}

// checkContentShape rejects payloads that do not match the declared kind.
// Field-level completeness is deferred until submission.
func checkContentShape(kind domain.Kind, content domain.Content) error {
	switch kind {
	case domain.KindDictionary:
		if content.Dictionary == nil || content.Folklore != nil {
			return domain.NewError(domain.KindValidation, "dictionary revisions require dictionary content")
		}
	case domain.KindFolklore:
		if content.Folklore == nil || content.Dictionary != nil {
			return domain.NewError(domain.KindValidation, "folklore revisions require folklore content")
		}
	}
	return nil
}
