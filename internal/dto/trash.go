package dto

import (
	"encoding/json"
	"time"

	"github.com/craftline/craftline_backend/internal/core/domain"
)

// TrashSnapshotResponse is the API representation of a trashed record.
type TrashSnapshotResponse struct {
	TrashID        string          `json:"trashID"`
	ItemType       string          `json:"itemType"`
	OriginalID     string          `json:"originalID"`
	Snapshot       json.RawMessage `json:"snapshot"`
	DeletedBy      *string         `json:"deletedBy,omitempty"`
	Reason         *string         `json:"reason,omitempty"`
	DeletedAt      time.Time       `json:"deletedAt"`
	RetentionUntil time.Time       `json:"retentionUntil"`
}

// TrashLogResponse is one audit ledger entry.
type TrashLogResponse struct {
	LogID       string    `json:"logID"`
	ItemType    string    `json:"itemType"`
	ItemID      string    `json:"itemID"`
	Action      string    `json:"action"`
	ActorUserID *string   `json:"actorUserId,omitempty"`
	Reason      *string   `json:"reason,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// OKResponse is the `{ok:true}` acknowledgment used by the trash endpoints.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ToTrashSnapshotResponse maps a domain snapshot to its API shape.
func ToTrashSnapshotResponse(s domain.TrashSnapshot) TrashSnapshotResponse {
	return TrashSnapshotResponse{
		TrashID:        s.TrashID,
		ItemType:       s.ItemType,
		OriginalID:     s.OriginalID,
		Snapshot:       s.Snapshot,
		DeletedBy:      s.DeletedBy,
		Reason:         s.Reason,
		DeletedAt:      s.DeletedAt,
		RetentionUntil: s.RetentionUntil,
	}
}

// ToTrashLogResponse maps a domain trash log entry to its API shape.
func ToTrashLogResponse(l domain.TrashLog) TrashLogResponse {
	return TrashLogResponse{
		LogID:       l.LogID,
		ItemType:    l.ItemType,
		ItemID:      l.ItemID,
		Action:      string(l.Action),
		ActorUserID: l.ActorUserID,
		Reason:      l.Reason,
		Timestamp:   l.Timestamp,
	}
}
