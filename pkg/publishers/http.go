package publishers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/httpclient"
)

// httpSender POSTs events as JSON to a configured webhook URL.
type httpSender struct {
	url     string
	headers map[string]string
	client  httpclient.Client
	log     Logger
}

func newHTTPPublisher(_ context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("publisher %q missing http configuration", cfg.ID)
	}

	client := httpclient.NewRestyClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second)

	sender := &httpSender{
		url:     cfg.HTTP.URL,
		headers: cfg.HTTP.Headers,
		client:  client,
		log:     ensureLogger(log),
	}
	return &senderPublisher{id: cfg.ID, typ: TypeHTTP, send: sender}, nil
}

// Send delivers the event to the configured webhook.
func (h *httpSender) Send(ctx context.Context, evt Event) error {
	resp, err := h.client.Post(ctx, h.url, h.headers, evt)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		snippet := readBodySnippet(resp.Body())
		return fmt.Errorf("http response status %d: %s", resp.StatusCode(), snippet)
	}
	return nil
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
