package supportwindow

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws-samples/eks-notifier/internal/domain/entity"
)

var (
	ErrEmptyDocument = errors.New("empty support window document")
	ErrNegativeDays  = errors.New("negative warning window")
)

type window struct {
	End  entity.Date `json:"end"`
	Days int         `json:"days"`
}

// Decode parses a document of the form {"1.29": {"end": "2025-03-23", "days": 60}}.
// A document is accepted or rejected as a whole.
func Decode(data []byte) (entity.SupportWindowTable, error) {
	windows := map[string]window{}

	err := json.Unmarshal(data, &windows)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal support window document: %w", err)
	}

	if len(windows) == 0 {
		return nil, ErrEmptyDocument
	}

	ret := make(entity.SupportWindowTable, len(windows))

	for version, w := range windows {
		if w.End.IsZero() {
			return nil, fmt.Errorf("missing end date for version %s", version)
		}

		if w.Days < 0 {
			return nil, fmt.Errorf("version %s: %w", version, ErrNegativeDays)
		}

		ret[version] = entity.SupportWindowEntry{
			Version: version,
			End:     w.End,
			Days:    w.Days,
		}
	}

	return ret, nil
}

// Encode is the inverse of Decode.
func Encode(table entity.SupportWindowTable) ([]byte, error) {
	windows := make(map[string]window, len(table))
	for version, entry := range table {
		windows[version] = window{End: entry.End, Days: entry.Days}
	}

	ret, err := json.MarshalIndent(windows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal support window document: %w", err)
	}

	return ret, nil
}
