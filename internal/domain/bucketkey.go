package domain

import "strings"

// BucketKey identifies a capacity bucket by its (team, role, location)
// triple. Keys are stored canonicalized, so lookups are insensitive to case
// and surrounding whitespace. Using a struct key instead of a joined string
// keeps separator characters inside field values from producing collisions.
type BucketKey struct {
	Team     string
	Role     string
	Location string
}

// NewBucketKey canonicalizes the triple. Canonicalization is total: every
// input maps to exactly one key (fields lowercased and whitespace-trimmed).
// Distinct triples that differ only in case or padding merge into one bucket.
func NewBucketKey(team, role, location string) BucketKey {
	return BucketKey{
		Team:     canonField(team),
		Role:     canonField(role),
		Location: canonField(location),
	}
}

func canonField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// String renders the key for display and logging. Equality always goes
// through the struct value, never through this string.
func (k BucketKey) String() string {
	return k.Team + "/" + k.Role + "/" + k.Location
}

// MarshalText lets the key serve as a JSON map key.
func (k BucketKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
