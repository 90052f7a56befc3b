package domain

import "time"

// SnapshotInfo describes the persisted entries of one source.
type SnapshotInfo struct {
	Source    Source    `json:"source"`
	Entries   int       `json:"entries"`
	UpdatedAt time.Time `json:"updated_at"`
}
