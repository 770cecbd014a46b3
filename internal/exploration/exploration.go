// Package exploration manages the lifecycle of strategy explorations: one
// user-submitted strategic question plus the generated candidate strategies.
// Exploration rows live in Postgres; result payloads live in blob storage.
package exploration

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/strategos/strategos/pkg/scoring"
)

// Exploration statuses. An exploration is created as processing and
// transitions exactly once, to completed or failed.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Exploration is one strategic question and its generation run.
type Exploration struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Context   string    `json:"context,omitempty"`
	Status    string    `json:"status"`
	Error     *string   `json:"error,omitempty"`
	ResultRef *string   `json:"resultRef,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Strategy is one generated candidate. Strategies have no standalone
// identity; they are addressed by the (explorationID, name) pair.
// Scores is nil when the oracle omitted the score block.
type Strategy struct {
	Name        string          `json:"name"`
	Reason      string          `json:"reason"`
	HowToObtain string          `json:"howToObtain"`
	Metrics     string          `json:"metrics"`
	Confidence  string          `json:"confidence"`
	Tags        []string        `json:"tags"`
	Scores      *scoring.Scores `json:"scores"`
}

// Result is the full payload of a completed exploration.
type Result struct {
	Strategies      []Strategy `json:"strategies"`
	ThinkingProcess string     `json:"thinkingProcess"`
}

// Normalize applies defaulting rules for fields the oracle sometimes
// omits: nil tags become an empty list and a missing confidence defaults
// to "medium".
func (r *Result) Normalize() {
	for i := range r.Strategies {
		if r.Strategies[i].Tags == nil {
			r.Strategies[i].Tags = []string{}
		}
		if r.Strategies[i].Confidence == "" {
			r.Strategies[i].Confidence = "medium"
		}
	}
}

// DecodeResult parses a stored result payload and normalizes it.
func DecodeResult(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode result payload: %w", err)
	}
	r.Normalize()
	return &r, nil
}

// EncodeResult serializes a result payload for blob storage.
func EncodeResult(r *Result) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode result payload: %w", err)
	}
	return data, nil
}
