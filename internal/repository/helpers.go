package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// marshalJSON serializes a value for storage in a TEXT column.
func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling %T: %w", v, err)
	}
	return string(data), nil
}

// unmarshalJSON deserializes a TEXT column into the given destination.
func unmarshalJSON(data string, dst any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", dst, err)
	}
	return nil
}

// timeToString converts a time to a value suitable for SQLite storage.
// The zero time stores as SQL NULL.
func timeToString(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

// parseTime parses a stored timestamp, returning the zero time for NULL,
// empty, or malformed values.
func parseTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}
