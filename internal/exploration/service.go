package exploration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strategos/strategos/internal/logging"
	"github.com/strategos/strategos/internal/storage"
)

// Service provides exploration persistence backed by Postgres and a blob
// storage client for result payloads.
type Service struct {
	db      *sql.DB
	storage storage.Client
}

// NewService creates a new exploration Service.
func NewService(db *sql.DB, storage storage.Client) *Service {
	return &Service{db: db, storage: storage}
}

// Create inserts a new exploration in processing status.
func (s *Service) Create(ctx context.Context, question, context_ string) (*Exploration, error) {
	e := &Exploration{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO explorations (id, question, context, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, question, context, status, error, result_ref, created_at`,
		uuid.NewString(), question, context_, StatusProcessing,
	).Scan(&e.ID, &e.Question, &e.Context, &e.Status, &e.Error, &e.ResultRef, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create exploration: %w", err)
	}
	return e, nil
}

// Complete stores the result payload and marks the exploration completed.
// Only a processing exploration can complete; a second transition is an error.
func (s *Service) Complete(ctx context.Context, id string, res *Result) error {
	data, err := EncodeResult(res)
	if err != nil {
		return err
	}
	if err := s.storage.PutResult(ctx, id, data); err != nil {
		return fmt.Errorf("store result payload: %w", err)
	}

	ref := "results/" + id + ".json"
	tag, err := s.db.ExecContext(ctx,
		`UPDATE explorations SET status = $1, result_ref = $2
		 WHERE id = $3 AND status = $4`,
		StatusCompleted, ref, id, StatusProcessing,
	)
	if err != nil {
		return fmt.Errorf("complete exploration %s: %w", id, err)
	}
	if n, _ := tag.RowsAffected(); n == 0 {
		return fmt.Errorf("exploration %s is not processing", id)
	}
	return nil
}

// Fail marks the exploration failed with an error string.
func (s *Service) Fail(ctx context.Context, id, errMsg string) error {
	tag, err := s.db.ExecContext(ctx,
		`UPDATE explorations SET status = $1, error = $2
		 WHERE id = $3 AND status = $4`,
		StatusFailed, errMsg, id, StatusProcessing,
	)
	if err != nil {
		return fmt.Errorf("fail exploration %s: %w", id, err)
	}
	if n, _ := tag.RowsAffected(); n == 0 {
		return fmt.Errorf("exploration %s is not processing", id)
	}
	return nil
}

// Get retrieves an exploration by ID.
func (s *Service) Get(ctx context.Context, id string) (*Exploration, error) {
	e := &Exploration{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, question, context, status, error, result_ref, created_at
		 FROM explorations WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Question, &e.Context, &e.Status, &e.Error, &e.ResultRef, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get exploration %s: %w", id, err)
	}
	return e, nil
}

// GetResult loads and decodes the result payload of a completed exploration.
func (s *Service) GetResult(ctx context.Context, id string) (*Result, error) {
	data, err := s.storage.GetResult(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load result payload %s: %w", id, err)
	}
	return DecodeResult(data)
}

// List returns the most recent explorations, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Exploration, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, question, context, status, error, result_ref, created_at
		 FROM explorations ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list explorations: %w", err)
	}
	defer rows.Close()

	var result []Exploration
	for rows.Next() {
		var e Exploration
		if err := rows.Scan(&e.ID, &e.Question, &e.Context, &e.Status, &e.Error, &e.ResultRef, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exploration: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// Completed is a completed exploration together with its raw result payload.
type Completed struct {
	ID        string
	Question  string
	CreatedAt time.Time
	Payload   []byte
}

// ListCompleted returns every completed exploration with its raw payload,
// oldest first. A payload that cannot be loaded from storage is skipped
// with a warning; one damaged record must not block the rest of history.
func (s *Service) ListCompleted(ctx context.Context) ([]Completed, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, question, created_at
		 FROM explorations WHERE status = $1 ORDER BY created_at ASC`,
		StatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("list completed explorations: %w", err)
	}
	defer rows.Close()

	type row struct {
		id, question string
		createdAt    time.Time
	}
	var metas []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.question, &r.createdAt); err != nil {
			return nil, fmt.Errorf("scan completed exploration: %w", err)
		}
		metas = append(metas, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var result []Completed
	for _, m := range metas {
		payload, err := s.storage.GetResult(ctx, m.id)
		if err != nil {
			logging.Warn("skipping exploration with unreadable payload",
				"exploration", m.id, "err", err)
			continue
		}
		result = append(result, Completed{
			ID:        m.id,
			Question:  m.question,
			CreatedAt: m.createdAt,
			Payload:   payload,
		})
	}
	return result, nil
}
