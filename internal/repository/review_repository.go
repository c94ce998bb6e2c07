package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/logger"
)

// PostgresReviewRepository implements read access to the review ledger.
// Writes happen only inside the workflow transaction; ledger rows are
// append-only and never mutated afterwards.
type PostgresReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReviewRepository creates a new PostgresReviewRepository.
func NewPostgresReviewRepository(pool *pgxpool.Pool) *PostgresReviewRepository {
	return &PostgresReviewRepository{pool: pool}
}

// ListByReviewer returns a reviewer's most recent decisions.
func (r *PostgresReviewRepository) ListByReviewer(ctx context.Context, reviewerID string, limit int) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, revision_id, reviewer_id, reviewer_role, decision, notes, review_round, created_at
		FROM reviews
		WHERE reviewer_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, reviewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("query reviews by reviewer: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// ListForRound returns all decisions recorded against one revision-round.
func (r *PostgresReviewRepository) ListForRound(ctx context.Context, revisionID string, round int) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, revision_id, reviewer_id, reviewer_role, decision, notes, review_round, created_at
		FROM reviews
		WHERE revision_id = $1 AND review_round = $2
		ORDER BY created_at
	`, revisionID, round)
	if err != nil {
		return nil, fmt.Errorf("query reviews for round: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func collectReviews(rows pgx.Rows) ([]domain.Review, error) {
	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.RevisionID, &rv.ReviewerID, &rv.ReviewerRole,
			&rv.Decision, &rv.Notes, &rv.Round, &rv.CreatedAt); err != nil {
			logger.Default().Error("Failed to scan review row",
				slog.String("repository", "review"),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
