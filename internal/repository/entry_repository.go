package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
)

// PostgresEntryRepository implements EntryRepository using PostgreSQL.
type PostgresEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEntryRepository creates a new PostgresEntryRepository.
func NewPostgresEntryRepository(pool *pgxpool.Pool) *PostgresEntryRepository {
	return &PostgresEntryRepository{pool: pool}
}

// Get retrieves an entry by ID, returning nil when it does not exist.
func (r *PostgresEntryRepository) Get(ctx context.Context, id string) (*domain.Entry, error) {
	var entry domain.Entry
	err := r.pool.QueryRow(ctx, `
		SELECT id, kind, status, current_revision_id, active_round, created_at, updated_at
		FROM entries
		WHERE id = $1
	`, id).Scan(&entry.ID, &entry.Kind, &entry.Status, &entry.CurrentRevisionID,
		&entry.ActiveRound, &entry.CreatedAt, &entry.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &entry, nil
}

const entryWithRevisionQuery = `
	SELECT e.id, e.kind, e.status, e.current_revision_id, e.active_round, e.created_at, e.updated_at,
		r.id, r.entry_id, r.kind, r.content, r.source, r.self_knowledge, r.media_url,
		r.media_source, r.self_produced_media, r.status, r.review_round, r.created_by,
		r.created_at, r.updated_at, r.approved_at
	FROM entries e
	JOIN revisions r ON r.id = e.current_revision_id
`

// GetPublished retrieves a published entry joined with its current revision,
// returning nil when the entry does not exist or is not published.
func (r *PostgresEntryRepository) GetPublished(ctx context.Context, id string) (*domain.EntryWithRevision, error) {
	row := r.pool.QueryRow(ctx, entryWithRevisionQuery+`
		WHERE e.id = $1 AND e.status = 'published'
	`, id)

	pair, err := scanEntryWithRevision(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get published entry: %w", err)
	}
	return pair, nil
}

// ListPublished returns published entries with their current revisions.
func (r *PostgresEntryRepository) ListPublished(ctx context.Context, kind domain.Kind) ([]domain.EntryWithRevision, error) {
	query := entryWithRevisionQuery + ` WHERE e.status = 'published'`
	args := []interface{}{}
	if kind != "" {
		query += ` AND e.kind = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY e.updated_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query published entries: %w", err)
	}
	defer rows.Close()

	var pairs []domain.EntryWithRevision
	for rows.Next() {
		pair, err := scanEntryWithRevision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan published entry: %w", err)
		}
		pairs = append(pairs, *pair)
	}
	return pairs, rows.Err()
}

func scanEntryWithRevision(row pgx.Row) (*domain.EntryWithRevision, error) {
	var pair domain.EntryWithRevision
	var content []byte

	err := row.Scan(
		&pair.Entry.ID, &pair.Entry.Kind, &pair.Entry.Status, &pair.Entry.CurrentRevisionID,
		&pair.Entry.ActiveRound, &pair.Entry.CreatedAt, &pair.Entry.UpdatedAt,
		&pair.CurrentRevision.ID, &pair.CurrentRevision.EntryID, &pair.CurrentRevision.Kind, &content,
		&pair.CurrentRevision.Provenance.Source, &pair.CurrentRevision.Provenance.SelfKnowledge,
		&pair.CurrentRevision.Provenance.MediaURL, &pair.CurrentRevision.Provenance.MediaSource,
		&pair.CurrentRevision.Provenance.SelfProducedMedia,
		&pair.CurrentRevision.Status, &pair.CurrentRevision.ReviewRound, &pair.CurrentRevision.CreatedBy,
		&pair.CurrentRevision.CreatedAt, &pair.CurrentRevision.UpdatedAt, &pair.CurrentRevision.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &pair.CurrentRevision.Content); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}
	return &pair, nil
}
