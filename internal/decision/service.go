// Package decision records human curator verdicts on individual strategies,
// independent of their computed scores.
package decision

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Decision values. Anything else is rejected at the boundary.
const (
	Adopt   = "adopt"
	Reject  = "reject"
	Pending = "pending"
)

// Decision is one curator verdict, keyed by (ExplorationID, StrategyName).
type Decision struct {
	ExplorationID   string    `json:"explorationId"`
	StrategyName    string    `json:"strategyName"`
	Decision        string    `json:"decision"`
	Reason          *string   `json:"reason,omitempty"`
	FeasibilityNote *string   `json:"feasibilityNote,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Validate checks the decision value and key fields.
func (d *Decision) Validate() error {
	if d.ExplorationID == "" || d.StrategyName == "" {
		return fmt.Errorf("explorationId and strategyName are required")
	}
	switch d.Decision {
	case Adopt, Reject, Pending:
		return nil
	}
	return fmt.Errorf("invalid decision %q: must be adopt, reject, or pending", d.Decision)
}

// Service provides decision persistence backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a decision Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Upsert creates or replaces the decision for a strategy. Validation
// errors surface synchronously to the caller.
func (s *Service) Upsert(ctx context.Context, d *Decision) (*Decision, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := *d
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO strategy_decisions
		   (exploration_id, strategy_name, decision, reason, feasibility_note)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (exploration_id, strategy_name) DO UPDATE
		   SET decision = EXCLUDED.decision,
		       reason = EXCLUDED.reason,
		       feasibility_note = EXCLUDED.feasibility_note,
		       updated_at = now()
		 RETURNING updated_at`,
		d.ExplorationID, d.StrategyName, d.Decision, d.Reason, d.FeasibilityNote,
	).Scan(&out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert decision %s/%s: %w", d.ExplorationID, d.StrategyName, err)
	}
	return &out, nil
}

// Get returns the decision for a strategy, or nil when none exists.
func (s *Service) Get(ctx context.Context, explorationID, strategyName string) (*Decision, error) {
	d := &Decision{}
	err := s.db.QueryRowContext(ctx,
		`SELECT exploration_id, strategy_name, decision, reason, feasibility_note, updated_at
		 FROM strategy_decisions WHERE exploration_id = $1 AND strategy_name = $2`,
		explorationID, strategyName,
	).Scan(&d.ExplorationID, &d.StrategyName, &d.Decision, &d.Reason, &d.FeasibilityNote, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get decision %s/%s: %w", explorationID, strategyName, err)
	}
	return d, nil
}

// ListAdopted returns adopted decisions, most recently updated first.
// A non-positive limit returns all of them.
func (s *Service) ListAdopted(ctx context.Context, limit int) ([]Decision, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT exploration_id, strategy_name, decision, reason, feasibility_note, updated_at
		 FROM strategy_decisions WHERE decision = $1
		 ORDER BY updated_at DESC LIMIT $2`,
		Adopt, lim,
	)
	if err != nil {
		return nil, fmt.Errorf("list adopted decisions: %w", err)
	}
	defer rows.Close()

	var result []Decision
	for rows.Next() {
		var d Decision
		if err := rows.Scan(&d.ExplorationID, &d.StrategyName, &d.Decision,
			&d.Reason, &d.FeasibilityNote, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
