package service

import (
	"context"
	"log"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/metrics"
	"github.com/pitelleadami/ChirinIvatan/internal/repository"
	"github.com/pitelleadami/ChirinIvatan/internal/workflow"
)

// ReviewService is the gate in front of the decision workflow: it enforces
// who may vote and what a well-formed decision looks like, then hands the
// decision to the workflow repository for its atomic effect.
type ReviewService struct {
	workflowRepo repository.WorkflowRepository
	revisionRepo repository.RevisionRepository
	reviewRepo   repository.ReviewRepository

	reviewHistoryLimit int
}

// NewReviewService creates a new ReviewService.
func NewReviewService(workflowRepo repository.WorkflowRepository, revisionRepo repository.RevisionRepository, reviewRepo repository.ReviewRepository, reviewHistoryLimit int) *ReviewService {
	return &ReviewService{
		workflowRepo:       workflowRepo,
		revisionRepo:       revisionRepo,
		reviewRepo:         reviewRepo,
		reviewHistoryLimit: reviewHistoryLimit,
	}
}

// Decide records one review decision and returns its workflow effect.
func (s *ReviewService) Decide(ctx context.Context, caller domain.Identity, revisionID string, decision domain.Decision, notes, requestID string) (*workflow.DecisionResult, error) {
	if !caller.Role.CanReview() {
		return nil, domain.NewError(domain.KindPermissionDenied, "contributors cannot review submissions")
	}

	if !domain.IsValidDecision(decision) {
		return nil, domain.NewError(domain.KindValidation, "decision must be one of: approve, reject, flag")
	}
	if decision.RequiresNotes() && notes == "" {
		return nil, domain.NewError(domain.KindValidation, "notes are required for reject and flag decisions")
	}

	rev, err := s.revisionRepo.Get(ctx, revisionID)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, domain.NewError(domain.KindNotFound, "revision not found")
	}

	timer := metrics.NewTimer()
	result, err := s.workflowRepo.Decide(ctx, revisionID, caller, decision, notes)
	if err != nil {
		return nil, err
	}

	metrics.ObserveDecision(string(rev.Kind), string(decision), string(result.Outcome), timer.Elapsed())
	log.Printf("[request_id=%s] Decision %s on revision %s by %s (%s): outcome=%s round=%d",
		requestID, decision, revisionID, caller.UserID, caller.Role, result.Outcome, result.Round)
	return result, nil
}

// MyReviews returns the caller's recent decisions, newest first.
func (s *ReviewService) MyReviews(ctx context.Context, caller domain.Identity) ([]domain.Review, error) {
	if !caller.Role.CanReview() {
		return nil, domain.NewError(domain.KindPermissionDenied, "contributors have no review history")
	}
	return s.reviewRepo.ListByReviewer(ctx, caller.UserID, s.reviewHistoryLimit)
}
