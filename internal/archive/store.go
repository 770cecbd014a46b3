package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/strategos/strategos/pkg/scoring"
)

// PostgresStore implements Store on Postgres. Scores are serialized to a
// JSON text column on write and decoded on read; nothing outside this file
// sees the serialized form.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates an archive store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ExistingKeys returns the set of (explorationID, name) pairs already archived.
func (s *PostgresStore) ExistingKeys(ctx context.Context) (map[Key]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT exploration_id, name FROM top_strategies`,
	)
	if err != nil {
		return nil, fmt.Errorf("list archive keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[Key]bool)
	for rows.Next() {
		var k Key
		if err := rows.Scan(&k.ExplorationID, &k.Name); err != nil {
			return nil, fmt.Errorf("scan archive key: %w", err)
		}
		keys[k] = true
	}
	return keys, rows.Err()
}

// InsertBatch inserts entries, skipping keys that already exist.
// ON CONFLICT DO NOTHING makes concurrent passes safe without locks.
func (s *PostgresStore) InsertBatch(ctx context.Context, entries []Entry) (int, error) {
	inserted := 0
	for _, e := range entries {
		scoresJSON, err := json.Marshal(e.Scores)
		if err != nil {
			return inserted, fmt.Errorf("marshal scores for %s/%s: %w", e.ExplorationID, e.Name, err)
		}
		tag, err := s.db.ExecContext(ctx,
			`INSERT INTO top_strategies
			   (exploration_id, name, reason, how_to_obtain, total_score, scores, question, judgment)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (exploration_id, name) DO NOTHING`,
			e.ExplorationID, e.Name, e.Reason, e.HowToObtain,
			e.TotalScore, string(scoresJSON), e.Question, string(e.Judgment),
		)
		if err != nil {
			return inserted, fmt.Errorf("insert archive entry %s/%s: %w", e.ExplorationID, e.Name, err)
		}
		if n, _ := tag.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var result []Entry
	for rows.Next() {
		var e Entry
		var scoresJSON, judgment string
		if err := rows.Scan(&e.ExplorationID, &e.Name, &e.Reason, &e.HowToObtain,
			&e.TotalScore, &scoresJSON, &e.Question, &judgment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan archive entry: %w", err)
		}
		if err := json.Unmarshal([]byte(scoresJSON), &e.Scores); err != nil {
			return nil, fmt.Errorf("decode scores for %s/%s: %w", e.ExplorationID, e.Name, err)
		}
		e.Judgment = scoring.Judgment(judgment)
		result = append(result, e)
	}
	return result, rows.Err()
}

const entryColumns = `exploration_id, name, reason, how_to_obtain,
	total_score, scores, question, judgment, created_at`

// TopByScore returns up to limit entries ordered by total score descending.
func (s *PostgresStore) TopByScore(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM top_strategies
		 ORDER BY total_score DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top archive entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// List returns all entries, highest score first.
func (s *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM top_strategies ORDER BY total_score DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list archive entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Delete removes one entry by key.
func (s *PostgresStore) Delete(ctx context.Context, key Key) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM top_strategies WHERE exploration_id = $1 AND name = $2`,
		key.ExplorationID, key.Name,
	)
	if err != nil {
		return fmt.Errorf("delete archive entry %s/%s: %w", key.ExplorationID, key.Name, err)
	}
	return nil
}
