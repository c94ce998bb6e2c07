package service

import (
	"context"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/repository"
	"github.com/pitelleadami/ChirinIvatan/internal/workflow"
)

// EntryService is the public read surface over published entries. Every read
// goes through the provenance mask; raw provenance never leaves the service.
type EntryService struct {
	entryRepo        repository.EntryRepository
	contributionRepo repository.ContributionRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo repository.EntryRepository, contributionRepo repository.ContributionRepository) *EntryService {
	return &EntryService{
		entryRepo:        entryRepo,
		contributionRepo: contributionRepo,
	}
}

// GetPublic returns the masked projection of one published entry.
func (s *EntryService) GetPublic(ctx context.Context, id string) (*domain.PublicEntry, error) {
	ewr, err := s.entryRepo.GetPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	if ewr == nil {
		return nil, domain.NewError(domain.KindNotFound, "entry not found")
	}

	public := workflow.MaskProvenance(ewr.Entry, ewr.CurrentRevision)
	return &public, nil
}

// ListPublic returns masked projections of published entries. The kind filter
// accepts "dictionary", "folklore", or empty for all kinds.
func (s *EntryService) ListPublic(ctx context.Context, kind string) ([]domain.PublicEntry, error) {
	if kind != "" && !domain.IsValidKind(domain.Kind(kind)) {
		return nil, domain.NewError(domain.KindValidation, "kind must be one of: dictionary, folklore")
	}

	entries, err := s.entryRepo.ListPublished(ctx, domain.Kind(kind))
	if err != nil {
		return nil, err
	}

	public := make([]domain.PublicEntry, 0, len(entries))
	for _, ewr := range entries {
		public = append(public, workflow.MaskProvenance(ewr.Entry, ewr.CurrentRevision))
	}
	return public, nil
}

// MyContributions returns the caller's contribution summary.
func (s *EntryService) MyContributions(ctx context.Context, caller domain.Identity) (*domain.ContributionSummary, error) {
	return s.contributionRepo.SummaryForUser(ctx, caller.UserID)
}
