package publishers

import (
	"time"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/domain"
)

// Event represents the payload published downstream for one search result.
type Event struct {
	SearchID    string        `json:"search_id"`
	SearchName  string        `json:"search_name"`
	Kind        string        `json:"kind"`
	Record      domain.Record `json:"record"`
	CollectedAt time.Time     `json:"collected_at"`
}

// NewEvent constructs an Event for the given saved search + record.
func NewEvent(searchID, searchName, kind string, record domain.Record) Event {
	return Event{
		SearchID:    searchID,
		SearchName:  searchName,
		Kind:        kind,
		Record:      record,
		CollectedAt: time.Now().UTC(),
	}
}
