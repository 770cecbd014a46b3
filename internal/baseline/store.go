package baseline

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore implements Store on Postgres. Baselines are append-only;
// there is no update or delete path.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a baseline store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Latest returns the most recent baseline by date, or nil if none exists.
func (s *PostgresStore) Latest(ctx context.Context) (*Baseline, error) {
	b := &Baseline{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, top_score, avg_score, total_strategies, high_score_count,
		        improvement, run_id, created_at
		 FROM score_baselines ORDER BY created_at DESC LIMIT 1`,
	).Scan(&b.ID, &b.TopScore, &b.AvgScore, &b.TotalStrategies, &b.HighScoreCount,
		&b.Improvement, &b.RunID, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest baseline: %w", err)
	}
	return b, nil
}

// Insert appends a baseline row.
func (s *PostgresStore) Insert(ctx context.Context, b *Baseline) (*Baseline, error) {
	out := *b
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO score_baselines
		   (top_score, avg_score, total_strategies, high_score_count, improvement, run_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		b.TopScore, b.AvgScore, b.TotalStrategies, b.HighScoreCount, b.Improvement, b.RunID,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert baseline: %w", err)
	}
	return &out, nil
}

// History returns the most recent limit baselines, newest first.
func (s *PostgresStore) History(ctx context.Context, limit int) ([]Baseline, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, top_score, avg_score, total_strategies, high_score_count,
		        improvement, run_id, created_at
		 FROM score_baselines ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("baseline history: %w", err)
	}
	defer rows.Close()

	var result []Baseline
	for rows.Next() {
		var b Baseline
		if err := rows.Scan(&b.ID, &b.TopScore, &b.AvgScore, &b.TotalStrategies,
			&b.HighScoreCount, &b.Improvement, &b.RunID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan baseline: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}
