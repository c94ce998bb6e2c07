package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pitelleadami/ChirinIvatan/internal/domain"
	"github.com/pitelleadami/ChirinIvatan/internal/workflow"
)

// PostgresWorkflowRepository applies review decisions. The entire decision —
// ledger append, quorum evaluation, state transition, publication, awards —
// runs in one transaction holding a row lock on the revision, so concurrent
// decisions on the same revision-round serialize and the transition happens
// exactly once.
type PostgresWorkflowRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWorkflowRepository creates a new PostgresWorkflowRepository.
func NewPostgresWorkflowRepository(pool *pgxpool.Pool) *PostgresWorkflowRepository {
	return &PostgresWorkflowRepository{pool: pool}
}

// Decide records one reviewer decision and commits its workflow effect.
func (r *PostgresWorkflowRepository) Decide(ctx context.Context, revisionID string, caller domain.Identity, decision domain.Decision, notes string) (*workflow.DecisionResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.WrapError(domain.KindStorageFailure, "begin decision transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rev, err := lockRevision(ctx, tx, revisionID)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, domain.NewError(domain.KindNotFound, "revision not found")
	}

	if rev.CreatedBy == caller.UserID {
		return nil, domain.NewError(domain.KindPermissionDenied, "you cannot review your own submission")
	}

	var result *workflow.DecisionResult
	if decision == domain.DecisionFlag {
		result, err = r.flag(ctx, tx, rev, caller, notes)
	} else {
		result, err = r.vote(ctx, tx, rev, caller, decision, notes)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.WrapError(domain.KindStorageFailure, "commit decision", err)
	}
	return result, nil
}

// flag opens a re-review round on a published entry: the active round is
// incremented and the current content is cloned into a new pending revision
// carrying that round. The published entry is left untouched until the new
// round resolves.
func (r *PostgresWorkflowRepository) flag(ctx context.Context, tx pgx.Tx, rev *domain.Revision, caller domain.Identity, notes string) (*workflow.DecisionResult, error) {
	if rev.Status != domain.RevisionStatusApproved || rev.EntryID == nil {
		return nil, domain.NewError(domain.KindInvalidState, "only approved published content can be flagged")
	}

	entry, err := lockEntry(ctx, tx, *rev.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.Status != domain.EntryStatusPublished {
		return nil, domain.NewError(domain.KindInvalidState, "only published entries can be flagged")
	}
	if entry.CurrentRevisionID == nil || *entry.CurrentRevisionID != rev.ID {
		return nil, domain.NewError(domain.KindInvalidState, "only the entry's current revision can be flagged")
	}

	var rereviewOpen bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM revisions WHERE entry_id = $1 AND status = 'pending')
	`, entry.ID).Scan(&rereviewOpen)
	if err != nil {
		return nil, fmt.Errorf("check open re-review: %w", err)
	}
	if rereviewOpen {
		return nil, domain.NewError(domain.KindInvalidState, "a re-review round is already in progress for this entry")
	}

	now := time.Now()
	newRound := entry.ActiveRound + 1

	_, err = tx.Exec(ctx, `
		UPDATE entries SET active_round = $2, updated_at = $3 WHERE id = $1
	`, entry.ID, newRound, now)
	if err != nil {
		return nil, fmt.Errorf("advance entry round: %w", err)
	}

	// Clone the published content into the revision that carries the
	// re-review. The ledger for the new round starts empty apart from the
	// flag itself.
	cloneID := uuid.New().String()
	_, err = tx.Exec(ctx, `
		INSERT INTO revisions (id, entry_id, kind, content, source, self_knowledge,
			media_url, media_source, self_produced_media, status, review_round,
			created_by, created_at, updated_at)
		SELECT $2, entry_id, kind, content, source, self_knowledge,
			media_url, media_source, self_produced_media, 'pending', $3,
			created_by, $4, $4
		FROM revisions WHERE id = $1
	`, rev.ID, cloneID, newRound, now)
	if err != nil {
		return nil, fmt.Errorf("clone revision for re-review: %w", err)
	}

	if err := insertReview(ctx, tx, cloneID, caller, domain.DecisionFlag, notes, newRound, now); err != nil {
		return nil, err
	}

	entryStatus := domain.EntryStatusPublished
	return &workflow.DecisionResult{
		Outcome:            workflow.OutcomeFlagged,
		RevisionID:         rev.ID,
		RevisionStatus:     rev.Status,
		EntryID:            &entry.ID,
		EntryStatus:        &entryStatus,
		Round:              newRound,
		RereviewRevisionID: &cloneID,
	}, nil
}

// vote records an approve or reject against a pending revision and applies
// the resulting transition for the current round only.
func (r *PostgresWorkflowRepository) vote(ctx context.Context, tx pgx.Tx, rev *domain.Revision, caller domain.Identity, decision domain.Decision, notes string) (*workflow.DecisionResult, error) {
	if rev.Status != domain.RevisionStatusPending {
		return nil, domain.NewError(domain.KindInvalidState, "only pending revisions can be reviewed")
	}

	now := time.Now()
	round := rev.Round()

	if err := insertReview(ctx, tx, rev.ID, caller, decision, notes, round, now); err != nil {
		return nil, err
	}

	if decision == domain.DecisionReject {
		return r.applyReject(ctx, tx, rev, round, now)
	}

	votes, err := roundVotes(ctx, tx, rev.ID, round)
	if err != nil {
		return nil, err
	}

	switch workflow.Evaluate(votes) {
	case workflow.OutcomeQuorumApproved:
		return r.applyApproval(ctx, tx, rev, round, now)
	default:
		result := &workflow.DecisionResult{
			Outcome:        workflow.OutcomePending,
			RevisionID:     rev.ID,
			RevisionStatus: domain.RevisionStatusPending,
			EntryID:        rev.EntryID,
			Round:          round,
		}
		if rev.EntryID != nil {
			entry, err := lockEntry(ctx, tx, *rev.EntryID)
			if err != nil {
				return nil, err
			}
			if entry != nil {
				result.EntryStatus = &entry.Status
			}
		}
		return result, nil
	}
}

// applyReject is the single-vote veto: the revision is rejected immediately.
// A published entry keeps its prior current revision untouched; an entry
// that never published becomes rejected.
func (r *PostgresWorkflowRepository) applyReject(ctx context.Context, tx pgx.Tx, rev *domain.Revision, round int, now time.Time) (*workflow.DecisionResult, error) {
	if err := workflow.ValidateRevisionTransition(rev.Status, domain.RevisionStatusRejected); err != nil {
		return nil, err
	}

	_, err := tx.Exec(ctx, `
		UPDATE revisions SET status = 'rejected', updated_at = $2 WHERE id = $1
	`, rev.ID, now)
	if err != nil {
		return nil, fmt.Errorf("reject revision: %w", err)
	}

	result := &workflow.DecisionResult{
		Outcome:        workflow.OutcomeRejected,
		RevisionID:     rev.ID,
		RevisionStatus: domain.RevisionStatusRejected,
		EntryID:        rev.EntryID,
		Round:          round,
	}

	if rev.EntryID != nil {
		entry, err := lockEntry(ctx, tx, *rev.EntryID)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			if entry.Status == domain.EntryStatusPublished {
				// The re-review attempt is discarded; the published
				// content stays backed by its previous revision.
				result.EntryStatus = &entry.Status
			} else {
				if err := workflow.ValidateEntryTransition(entry.Status, domain.EntryStatusRejected); err != nil {
					return nil, err
				}
				_, err = tx.Exec(ctx, `
					UPDATE entries SET status = 'rejected', updated_at = $2 WHERE id = $1
				`, entry.ID, now)
				if err != nil {
					return nil, fmt.Errorf("reject entry: %w", err)
				}
				rejected := domain.EntryStatusRejected
				result.EntryStatus = &rejected
			}
		}
	}

	return result, nil
}

// applyApproval publishes a revision that reached quorum: a first submission
// creates its entry, a re-review round replaces the entry's current revision.
func (r *PostgresWorkflowRepository) applyApproval(ctx context.Context, tx pgx.Tx, rev *domain.Revision, round int, now time.Time) (*workflow.DecisionResult, error) {
	if err := workflow.ValidateRevisionTransition(rev.Status, domain.RevisionStatusApproved); err != nil {
		return nil, err
	}

	_, err := tx.Exec(ctx, `
		UPDATE revisions SET status = 'approved', approved_at = $2, updated_at = $2 WHERE id = $1
	`, rev.ID, now)
	if err != nil {
		return nil, fmt.Errorf("approve revision: %w", err)
	}

	published := domain.EntryStatusPublished
	result := &workflow.DecisionResult{
		Outcome:        workflow.OutcomeQuorumApproved,
		RevisionID:     rev.ID,
		RevisionStatus: domain.RevisionStatusApproved,
		EntryStatus:    &published,
		Round:          round,
	}

	if rev.EntryID == nil {
		entryID := uuid.New().String()
		_, err = tx.Exec(ctx, `
			INSERT INTO entries (id, kind, status, current_revision_id, active_round, created_at, updated_at)
			VALUES ($1, $2, 'published', $3, 0, $4, $4)
		`, entryID, rev.Kind, rev.ID, now)
		if err != nil {
			return nil, fmt.Errorf("create entry: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE revisions SET entry_id = $2 WHERE id = $1
		`, rev.ID, entryID)
		if err != nil {
			return nil, fmt.Errorf("link revision to entry: %w", err)
		}

		result.EntryID = &entryID
		return result, awardContribution(ctx, tx, rev.CreatedBy, entryID, rev.ID, firstPublicationAward(rev.Kind), now)
	}

	entry, err := lockEntry(ctx, tx, *rev.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.NewError(domain.KindInvalidState, "revision references a missing entry")
	}
	if err := workflow.ValidateEntryTransition(entry.Status, domain.EntryStatusPublished); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE entries SET status = 'published', current_revision_id = $2, updated_at = $3 WHERE id = $1
	`, entry.ID, rev.ID, now)
	if err != nil {
		return nil, fmt.Errorf("publish revision: %w", err)
	}

	result.EntryID = &entry.ID
	return result, awardContribution(ctx, tx, rev.CreatedBy, entry.ID, rev.ID, domain.ContributionRevision, now)
}

func firstPublicationAward(kind domain.Kind) domain.ContributionType {
	if kind == domain.KindFolklore {
		return domain.ContributionFolkloreEntry
	}
	return domain.ContributionDictionaryTerm
}

// awardContribution grants an approval-time award. Awards are once per
// (user, entry, type); a conflict means it was already granted.
func awardContribution(ctx context.Context, tx pgx.Tx, userID, entryID, revisionID string, ctype domain.ContributionType, now time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO contribution_events (id, user_id, entry_id, revision_id, contribution_type, awarded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT contribution_once_per_entry DO NOTHING
	`, uuid.New().String(), userID, entryID, revisionID, ctype, now)
	if err != nil {
		return fmt.Errorf("award contribution: %w", err)
	}
	return nil
}

func insertReview(ctx context.Context, tx pgx.Tx, revisionID string, caller domain.Identity, decision domain.Decision, notes string, round int, now time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO reviews (id, revision_id, reviewer_id, reviewer_role, decision, notes, review_round, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.New().String(), revisionID, caller.UserID, caller.Role, decision, notes, round, now)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.NewError(domain.KindDuplicateVote, "you already recorded a decision for this revision in this round")
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func roundVotes(ctx context.Context, tx pgx.Tx, revisionID string, round int) ([]workflow.Vote, error) {
	rows, err := tx.Query(ctx, `
		SELECT reviewer_id, reviewer_role, decision
		FROM reviews
		WHERE revision_id = $1 AND review_round = $2
	`, revisionID, round)
	if err != nil {
		return nil, fmt.Errorf("query round votes: %w", err)
	}
	defer rows.Close()

	var votes []workflow.Vote
	for rows.Next() {
		var v workflow.Vote
		if err := rows.Scan(&v.ReviewerID, &v.Role, &v.Decision); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func lockRevision(ctx context.Context, tx pgx.Tx, id string) (*domain.Revision, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+revisionColumns+`
		FROM revisions
		WHERE id = $1
		FOR UPDATE
	`, id)

	rev, err := scanRevision(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock revision: %w", err)
	}
	return rev, nil
}

func lockEntry(ctx context.Context, tx pgx.Tx, id string) (*domain.Entry, error) {
	var entry domain.Entry
	err := tx.QueryRow(ctx, `
		SELECT id, kind, status, current_revision_id, active_round, created_at, updated_at
		FROM entries
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&entry.ID, &entry.Kind, &entry.Status, &entry.CurrentRevisionID,
		&entry.ActiveRound, &entry.CreatedAt, &entry.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock entry: %w", err)
	}
	return &entry, nil
}
