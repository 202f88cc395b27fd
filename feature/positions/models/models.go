package models

// Key is the natural key of a position: the ordered pair (depCode, depJob).
// It is the sole identity used for matching and merging; the description
// never participates in equality. Keeping the key an explicit value type
// (rather than comparing whole positions) makes the narrowed identity
// visible at every call site.
type Key struct {
	DepCode string
	DepJob  string
}

// String renders the key the way it appears in logs and error messages.
func (k Key) String() string {
	return k.DepCode + ":" + k.DepJob
}

// Position is a single snapshot or table record. Values are ephemeral:
// built fresh from each XML element or table row, discarded after the
// operation that produced them.
type Position struct {
	Key
	Description string
}

// Snapshot maps natural keys to positions. It is built once per sync call
// and holds exactly one entry per distinct key.
type Snapshot map[Key]Position
