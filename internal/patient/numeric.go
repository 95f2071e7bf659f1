package patient

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Numeric is a numeric field kept as entered text. The service stores these
// as doubles and may return them as JSON numbers; either shape unmarshals,
// and the value always marshals as a string for the service to coerce.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Numeric(s)
		return nil
	}
	if string(data) == "null" {
		*n = ""
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("numeric field: expected number or string, got %s", data)
	}
	*n = Numeric(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// Float parses the entered text. Empty text is reported as not present.
func (n Numeric) Float() (float64, bool) {
	if n == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
