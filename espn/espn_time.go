package espn

import (
	"strings"
	"time"
)

// ESPNTime wraps time.Time so JSON decoding accepts both full RFC3339
// timestamps and the shorter "YYYY-MM-DDThh:mmZ" strings that some ESPN
// endpoints return for event dates.
type ESPNTime struct {
	time.Time
}

var espnTimeLayouts = []string{
	time.RFC3339,             // 2006-01-02T15:04:05Z07:00
	"2006-01-02T15:04Z07:00", // no seconds
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *ESPNTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	var parseErr error
	for _, layout := range espnTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		parseErr = err
	}
	return parseErr
}
