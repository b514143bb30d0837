package search

import (
	"context"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/publishers"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/zoominfo"
)

// Searcher executes typed queries against the ZoomInfo API.
type Searcher interface {
	SearchContacts(ctx context.Context, q zoominfo.ContactQuery) (any, error)
	SearchCompanies(ctx context.Context, q zoominfo.CompanyQuery) (any, error)
}

// EventPublisher delivers record events downstream and reports how many sinks
// accepted the event.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}
