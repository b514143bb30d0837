package publishers

import "context"

// Publisher sends events to a downstream sink (SQS, SNS, Pub/Sub, HTTP).
type Publisher interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}

// sender is the transport-specific half of a publisher.
type sender interface {
	Send(ctx context.Context, evt Event) error
}

// senderPublisher attaches identity to a sender.
type senderPublisher struct {
	id   string
	typ  string
	send sender
}

func (p *senderPublisher) ID() string   { return p.id }
func (p *senderPublisher) Type() string { return p.typ }

func (p *senderPublisher) Publish(ctx context.Context, evt Event) error {
	return p.send.Send(ctx, evt)
}
