package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts JSON POST calls so callers can inject mocks or different
// transports.
type Client interface {
	Post(ctx context.Context, url string, headers map[string]string, body any) (Response, error)
}
