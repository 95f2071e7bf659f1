package patient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HistoryList holds the medicalHistory conditions. The service sometimes
// returns the list as a single ", "-joined string; either shape unmarshals
// into a sequence, and the list always marshals back as a JSON array.
type HistoryList []string

func (h *HistoryList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*h = items
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("medicalHistory: expected array or string, got %s", data)
	}
	*h = SplitHistory(joined)
	return nil
}

func (h HistoryList) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(h))
}

// Contains reports whether the condition is already selected.
func (h HistoryList) Contains(condition string) bool {
	for _, c := range h {
		if c == condition {
			return true
		}
	}
	return false
}

// SplitHistory turns the server's comma-joined representation into a
// sequence, dropping empty elements.
func SplitHistory(joined string) HistoryList {
	out := HistoryList{}
	for _, part := range strings.Split(joined, ", ") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
