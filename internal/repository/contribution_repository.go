package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

// PostgresContributionRepository implements ContributionRepository using PostgreSQL.
type PostgresContributionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContributionRepository creates a new PostgresContributionRepository.
func NewPostgresContributionRepository(pool *pgxpool.Pool) *PostgresContributionRepository {
	return &PostgresContributionRepository{pool: pool}
}

// SummaryForUser aggregates a contributor's lifetime awards.
func (r *PostgresContributionRepository) SummaryForUser(ctx context.Context, userID string) (*domain.ContributionSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT contribution_type, COUNT(*), MAX(awarded_at)
		FROM contribution_events
		WHERE user_id = $1
		GROUP BY contribution_type
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query contribution summary: %w", err)
	}
	defer rows.Close()

	var summary domain.ContributionSummary
	for rows.Next() {
		var ctype domain.ContributionType
		var count int
		var lastAwarded *time.Time

		if err := rows.Scan(&ctype, &count, &lastAwarded); err != nil {
			return nil, fmt.Errorf("scan contribution summary: %w", err)
		}

		switch ctype {
		case domain.ContributionDictionaryTerm:
			summary.DictionaryTerms = count
		case domain.ContributionFolkloreEntry:
			summary.FolkloreEntries = count
		case domain.ContributionRevision:
			summary.Revisions = count
		}
		summary.Total += count

		if lastAwarded != nil && (summary.LastContributionAt == nil || lastAwarded.After(*summary.LastContributionAt)) {
			t := *lastAwarded
			summary.LastContributionAt = &t
		}
	}
	return &summary, rows.Err()
}
