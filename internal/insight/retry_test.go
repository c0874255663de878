package insight

import (
	"context"
	"errors"
	"testing"
)

type countingClient struct {
	calls int
	errs  []error
	text  string
}

func (c *countingClient) Narrate(ctx context.Context, input Input) (string, error) {
	_ = ctx
	_ = input
	c.calls++
	if c.calls <= len(c.errs) {
		return "", c.errs[c.calls-1]
	}
	return c.text, nil
}

func TestWithRetryRecoversFromTimeout(t *testing.T) {
	base := &countingClient{errs: []error{context.DeadlineExceeded}, text: "prose"}
	client := WithRetry(base)

	text, err := client.Narrate(context.Background(), Input{ProductName: "Serum"})
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if text != "prose" {
		t.Fatalf("expected recovered text, got %q", text)
	}
	if base.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", base.calls)
	}
}

func TestWithRetryDoesNotRetryPermanentErrors(t *testing.T) {
	permanent := errors.New("invalid api key")
	base := &countingClient{errs: []error{permanent, permanent}}
	client := WithRetry(base)

	if _, err := client.Narrate(context.Background(), Input{}); !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if base.calls != 1 {
		t.Fatalf("expected single call, got %d", base.calls)
	}
}

func TestWithRetrySkipsPlaceholder(t *testing.T) {
	client := WithRetry(PlaceholderClient{})

	if _, err := client.Narrate(context.Background(), Input{}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}
