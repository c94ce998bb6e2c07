package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/logger"
)

const revisionColumns = `id, entry_id, kind, content, source, self_knowledge, media_url,
	media_source, self_produced_media, status, review_round, created_by,
	created_at, updated_at, approved_at`

// PostgresRevisionRepository implements RevisionRepository using PostgreSQL.
type PostgresRevisionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRevisionRepository creates a new PostgresRevisionRepository.
func NewPostgresRevisionRepository(pool *pgxpool.Pool) *PostgresRevisionRepository {
	return &PostgresRevisionRepository{pool: pool}
}

// Create inserts a new revision.
func (r *PostgresRevisionRepository) Create(ctx context.Context, rev *domain.Revision) error {
	content, err := json.Marshal(rev.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO revisions (id, entry_id, kind, content, source, self_knowledge,
			media_url, media_source, self_produced_media, status, review_round,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, rev.ID, rev.EntryID, rev.Kind, content, rev.Provenance.Source, rev.Provenance.SelfKnowledge,
		rev.Provenance.MediaURL, rev.Provenance.MediaSource, rev.Provenance.SelfProducedMedia,
		rev.Status, rev.ReviewRound, rev.CreatedBy, rev.CreatedAt, rev.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert revision: %w", err)
	}
	return nil
}

// Get retrieves a revision by ID, returning nil when it does not exist.
func (r *PostgresRevisionRepository) Get(ctx context.Context, id string) (*domain.Revision, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+revisionColumns+`
		FROM revisions
		WHERE id = $1
	`, id)

	rev, err := scanRevision(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get revision: %w", err)
	}
	return rev, nil
}

// Update persists content and provenance changes of a draft revision.
func (r *PostgresRevisionRepository) Update(ctx context.Context, rev *domain.Revision) error {
	content, err := json.Marshal(rev.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE revisions
		SET content = $2, source = $3, self_knowledge = $4, media_url = $5,
			media_source = $6, self_produced_media = $7, updated_at = $8
		WHERE id = $1
	`, rev.ID, content, rev.Provenance.Source, rev.Provenance.SelfKnowledge,
		rev.Provenance.MediaURL, rev.Provenance.MediaSource, rev.Provenance.SelfProducedMedia,
		rev.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update revision: %w", err)
	}
	return nil
}

// UpdateStatus moves a revision between statuses; the WHERE clause on the
// current status makes the transition an atomic compare-and-set.
func (r *PostgresRevisionRepository) UpdateStatus(ctx context.Context, id string, from, to domain.RevisionStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE revisions
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, id, from, to)

	if err != nil {
		return false, fmt.Errorf("update revision status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByCreator returns all revisions owned by a contributor, newest first.
func (r *PostgresRevisionRepository) ListByCreator(ctx context.Context, createdBy string) ([]domain.Revision, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+revisionColumns+`
		FROM revisions
		WHERE created_by = $1
		ORDER BY created_at DESC
	`, createdBy)
	if err != nil {
		return nil, fmt.Errorf("query revisions by creator: %w", err)
	}
	defer rows.Close()

	return collectRevisions(rows)
}

// ListPending returns the pending review queue for a kind.
func (r *PostgresRevisionRepository) ListPending(ctx context.Context, kind domain.Kind, rereview bool) ([]domain.Revision, error) {
	roundFilter := "review_round IS NULL"
	if rereview {
		roundFilter = "review_round IS NOT NULL"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+revisionColumns+`
		FROM revisions
		WHERE kind = $1 AND status = 'pending' AND `+roundFilter+`
		ORDER BY created_at
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("query pending revisions: %w", err)
	}
	defer rows.Close()

	return collectRevisions(rows)
}

func collectRevisions(rows pgx.Rows) ([]domain.Revision, error) {
	var revisions []domain.Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			logger.Default().Error("Failed to scan revision row",
				slog.String("repository", "revision"),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, *rev)
	}
	return revisions, rows.Err()
}

func scanRevision(row pgx.Row) (*domain.Revision, error) {
	var rev domain.Revision
	var content []byte

	err := row.Scan(&rev.ID, &rev.EntryID, &rev.Kind, &content,
		&rev.Provenance.Source, &rev.Provenance.SelfKnowledge,
		&rev.Provenance.MediaURL, &rev.Provenance.MediaSource, &rev.Provenance.SelfProducedMedia,
		&rev.Status, &rev.ReviewRound, &rev.CreatedBy,
		&rev.CreatedAt, &rev.UpdatedAt, &rev.ApprovedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &rev.Content); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}
	return &rev, nil
}
