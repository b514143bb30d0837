package publishers

import (
	"context"
	"errors"
	"fmt"
)

// Fanout delivers each record event to every configured sink. Sinks fail
// independently; one rejected delivery never blocks the others.
type Fanout struct {
	sinks []Publisher
}

// NewFanout builds a fanout over the given publishers, dropping nil entries.
func NewFanout(pubs []Publisher) *Fanout {
	sinks := make([]Publisher, 0, len(pubs))
	for _, p := range pubs {
		if p != nil {
			sinks = append(sinks, p)
		}
	}
	return &Fanout{sinks: sinks}
}

// Publish sends the event to every sink and reports how many accepted it.
// Failures are joined into one error alongside the success count, so callers
// can both mark partially delivered records and surface what went wrong.
func (f *Fanout) Publish(ctx context.Context, evt Event) (int, error) {
	if f == nil || len(f.sinks) == 0 {
		return 0, nil
	}

	accepted := 0
	var errs []error
	for _, p := range f.sinks {
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s publisher[%s]: %w", p.Type(), p.ID(), err))
			continue
		}
		accepted++
	}
	return accepted, errors.Join(errs...)
}

// Size reports the number of sinks the fanout delivers to.
func (f *Fanout) Size() int {
	if f == nil {
		return 0
	}
	return len(f.sinks)
}
