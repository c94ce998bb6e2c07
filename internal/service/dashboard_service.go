package service

import (
	"context"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/repository"
)

// DashboardService assembles the role-dependent landing view. The queues are
// projections over revision status and round: they are derived on read, never
// stored.
type DashboardService struct {
	revisionRepo     repository.RevisionRepository
	entryRepo        repository.EntryRepository
	reviewRepo       repository.ReviewRepository
	contributionRepo repository.ContributionRepository

	reviewHistoryLimit int
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(revisionRepo repository.RevisionRepository, entryRepo repository.EntryRepository, reviewRepo repository.ReviewRepository, contributionRepo repository.ContributionRepository, reviewHistoryLimit int) *DashboardService {
	return &DashboardService{
		revisionRepo:       revisionRepo,
		entryRepo:          entryRepo,
		reviewRepo:         reviewRepo,
		contributionRepo:   contributionRepo,
		reviewHistoryLimit: reviewHistoryLimit,
	}
}

// Overview builds the dashboard for the caller. Reviewers and admins see the
// per-kind review queues and their decision history; every role sees their
// own contribution summary.
func (s *DashboardService) Overview(ctx context.Context, caller domain.Identity) (*DashboardView, error) {
	view := &DashboardView{}

	if caller.Role.CanReview() {
		for _, kind := range domain.ValidKinds {
			queue, err := s.queueFor(ctx, kind)
			if err != nil {
				return nil, err
			}
			switch kind {
			case domain.KindDictionary:
				view.Dictionary = queue
			case domain.KindFolklore:
				view.Folklore = queue
			}
		}

		reviews, err := s.reviewRepo.ListByReviewer(ctx, caller.UserID, s.reviewHistoryLimit)
		if err != nil {
			return nil, err
		}
		view.MyReviews = reviews
	}

	contributions, err := s.contributionRepo.SummaryForUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	view.MyContributions = contributions

	return view, nil
}

func (s *DashboardService) queueFor(ctx context.Context, kind domain.Kind) (*QueueView, error) {
	submissions, err := s.revisionRepo.ListPending(ctx, kind, false)
	if err != nil {
		return nil, err
	}
	rereviews, err := s.revisionRepo.ListPending(ctx, kind, true)
	if err != nil {
		return nil, err
	}
	published, err := s.entryRepo.ListPublished(ctx, kind)
	if err != nil {
		return nil, err
	}
	return &QueueView{
		PendingSubmissions: submissions,
		PendingRereviews:   rereviews,
		PublishedEntries:   published,
	}, nil
}
