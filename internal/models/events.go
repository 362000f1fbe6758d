package models

import "time"

const PartChangedPattern = "part.changed"

type PartChangeAction string

const (
	PartCreated PartChangeAction = "created"
	PartUpdated PartChangeAction = "updated"
	PartDeleted PartChangeAction = "deleted"
)

// PartChangeEvent is the Kafka envelope published on every catalog write.
// Consumers filter on Pattern before decoding further.
type PartChangeEvent struct {
	Pattern string         `json:"pattern"`
	Data    PartChangeData `json:"data"`
}

type PartChangeData struct {
	PartID    string           `json:"part_id"`
	Action    PartChangeAction `json:"action"`
	ChangedAt time.Time        `json:"changed_at"`
}
