package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDiscordID(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		wantErr bool
	}{
		{name: "valid snowflake", id: 196188877885538304},
		{name: "zero", id: 0, wantErr: true},
		{name: "negative", id: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := DiscordID(tt.id)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIdentity) {
					t.Fatalf("expected ErrInvalidIdentity, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ext.Kind() != IdentityDiscord {
				t.Errorf("expected discord kind, got %v", ext.Kind())
			}

			got, ok := ext.Discord()
			if !ok || got != tt.id {
				t.Errorf("expected snowflake %d, got %d (ok=%v)", tt.id, got, ok)
			}

			if _, ok := ext.Minecraft(); ok {
				t.Error("discord identity should not report a Minecraft UUID")
			}
		})
	}
}

func TestMinecraftID(t *testing.T) {
	id := uuid.New()

	ext, err := MinecraftID(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ext.Kind() != IdentityMinecraft {
		t.Errorf("expected minecraft kind, got %v", ext.Kind())
	}

	got, ok := ext.Minecraft()
	if !ok || got != id {
		t.Errorf("expected UUID %s, got %s (ok=%v)", id, got, ok)
	}

	if _, err := MinecraftID(uuid.Nil); !errors.Is(err, ErrInvalidIdentity) {
		t.Errorf("expected ErrInvalidIdentity for nil UUID, got %v", err)
	}
}

func TestDatabaseError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError(cause)

	if !errors.Is(err, cause) {
		t.Error("DatabaseError should unwrap to its cause")
	}

	if err.Error() == cause.Error() {
		t.Error("DatabaseError message must not expose the cause")
	}
}
