package surface

import (
	"encoding/json"
	"io"

	"github.com/strategos/strategos/internal/ranking"
)

// JSONRenderer marshals the ranking result to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *ranking.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
