package domain

import (
	"encoding/json"
	"time"
)

// IdempotencyRecord tracks a caller-supplied operation key so that duplicate
// attempts of the same logical operation collapse into one effect.
//
// A record is created on first sight of a key (first writer wins) and marked
// used only after the guarded operation has durably committed. A record that
// exists but is not yet used means an attempt is in flight — or crashed
// before commit, in which case the guarded transaction itself is idempotent
// in its target state and a retry cannot double-apply.
type IdempotencyRecord struct {
	// Key is the caller-supplied token, e.g. an agent tool-invocation id.
	Key string `json:"key"`

	// Used is true once the guarded operation has committed.
	Used bool `json:"used"`

	// Metadata is opaque caller context stored with the key.
	Metadata json.RawMessage `json:"metadata,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}
