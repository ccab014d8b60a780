package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewPoolInvalidURL(t *testing.T) {
	ctx := context.Background()

	if _, err := NewPool(ctx, "not-a-url", 1, 0, zerolog.Nop()); err == nil {
		t.Fatalf("expected error when parsing invalid URL")
	}
}

func TestNewPoolPingFailure(t *testing.T) {
	// The context bounds the backoff so the test fails fast instead of
	// sitting through the full retry schedule.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewPool(ctx, "postgres://127.0.0.1:1/db", 1, 0, zerolog.Nop())
	if err == nil {
		t.Fatalf("expected error when pool cannot connect")
	}
}
