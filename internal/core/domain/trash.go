package domain

import (
	"encoding/json"
	"time"
)

// TrashAction is the kind of transition recorded in the trash log.
type TrashAction string

const (
	TrashActionMove    TrashAction = "move"
	TrashActionRestore TrashAction = "restore"
	TrashActionPurge   TrashAction = "purge"
)

// TrashSnapshot is a point-in-time JSON copy of a record taken when it was
// moved to trash. OriginalID is a back-reference to the soft-deleted live row,
// not ownership. Exactly one snapshot exists per move-to-trash event; it is
// removed on restore and on purge.
type TrashSnapshot struct {
	TrashID        string          `json:"trashID"`
	ItemType       string          `json:"itemType"`
	OriginalID     string          `json:"originalID"`
	Snapshot       json.RawMessage `json:"snapshot"`
	DeletedBy      *string         `json:"deletedBy,omitempty"`
	Reason         *string         `json:"reason,omitempty"`
	DeletedAt      time.Time       `json:"deletedAt"`
	RetentionUntil time.Time       `json:"retentionUntil"`
}

// TrashLog is one entry of the append-only audit ledger. Normal flows only
// ever insert; rows are never updated or deleted.
type TrashLog struct {
	LogID       string      `json:"logID"`
	ItemType    string      `json:"itemType"`
	ItemID      string      `json:"itemID"`
	Action      TrashAction `json:"action"`
	ActorUserID *string     `json:"actorUserID,omitempty"`
	Reason      *string     `json:"reason,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ItemTypeTeamMember is the itemType used by the team member trash flow.
const ItemTypeTeamMember = "team_member"
