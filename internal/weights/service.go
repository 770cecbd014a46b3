// Package weights stores per-user scoring weight vectors. A user without a
// stored vector scores under the documented defaults.
package weights

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/strategos/strategos/pkg/scoring"
)

// Service provides weight vector persistence backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a weights Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Get returns the user's weight vector, falling back to the default
// vector when the user has no stored configuration.
func (s *Service) Get(ctx context.Context, userID string) (scoring.Weights, error) {
	var w scoring.Weights
	err := s.db.QueryRowContext(ctx,
		`SELECT revenue_potential, time_to_revenue, competitive_advantage,
		        execution_feasibility, hq_contribution, merger_synergy
		 FROM user_weights WHERE user_id = $1`,
		userID,
	).Scan(&w.RevenuePotential, &w.TimeToRevenue, &w.CompetitiveAdvantage,
		&w.ExecutionFeasibility, &w.HQContribution, &w.MergerSynergy)
	if err == sql.ErrNoRows {
		return scoring.DefaultWeights(), nil
	}
	if err != nil {
		return scoring.Weights{}, fmt.Errorf("get weights for %s: %w", userID, err)
	}
	return w, nil
}

// Set validates and upserts the user's weight vector.
func (s *Service) Set(ctx context.Context, userID string, w scoring.Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_weights
		   (user_id, revenue_potential, time_to_revenue, competitive_advantage,
		    execution_feasibility, hq_contribution, merger_synergy)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE
		   SET revenue_potential = EXCLUDED.revenue_potential,
		       time_to_revenue = EXCLUDED.time_to_revenue,
		       competitive_advantage = EXCLUDED.competitive_advantage,
		       execution_feasibility = EXCLUDED.execution_feasibility,
		       hq_contribution = EXCLUDED.hq_contribution,
		       merger_synergy = EXCLUDED.merger_synergy,
		       updated_at = now()`,
		userID, w.RevenuePotential, w.TimeToRevenue, w.CompetitiveAdvantage,
		w.ExecutionFeasibility, w.HQContribution, w.MergerSynergy,
	)
	if err != nil {
		return fmt.Errorf("set weights for %s: %w", userID, err)
	}
	return nil
}
