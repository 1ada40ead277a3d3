package model

import (
	"time"

	"github.com/google/uuid"
)

type LookupKind string

const (
	KindVideo    LookupKind = "video"
	KindPlaylist LookupKind = "playlist"
)

type LookupStatus string

const (
	LookupStatusOK       LookupStatus = "ok"
	LookupStatusNotFound LookupStatus = "not_found"
	LookupStatusTimeout  LookupStatus = "timeout"
	LookupStatusFailed   LookupStatus = "failed"
)

// Lookup records that a conversion was requested. It never holds the
// generated checklist itself.
type Lookup struct {
	ID           uuid.UUID
	Kind         LookupKind
	SourceID     string
	Status       LookupStatus
	Items        int
	TotalSeconds int
	CreatedAt    time.Time
}

func NewLookup(kind LookupKind, sourceID string) *Lookup {
	return &Lookup{
		ID:        uuid.New(),
		Kind:      kind,
		SourceID:  sourceID,
		Status:    LookupStatusOK,
		CreatedAt: time.Now().UTC(),
	}
}
