package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// IdentityKind tags which external system an ExternalID belongs to.
type IdentityKind string

const (
	// IdentityDiscord is a Discord snowflake.
	IdentityDiscord IdentityKind = "discord"

	// IdentityMinecraft is a Minecraft account UUID.
	IdentityMinecraft IdentityKind = "minecraft"
)

// ExternalID is one external identity: either a Discord snowflake or a
// Minecraft UUID, never both and never neither. The only way to build one is
// through DiscordID or MinecraftID, which validate the raw value, so any
// ExternalID in circulation carries exactly one well-formed identity.
type ExternalID struct {
	kind      IdentityKind
	discord   int64
	minecraft uuid.UUID
}

// DiscordID builds an ExternalID from a Discord snowflake. Snowflakes are
// positive; anything else fails with ErrInvalidIdentity.
func DiscordID(id int64) (ExternalID, error) {
	if id <= 0 {
		return ExternalID{}, fmt.Errorf("%w: %d is not a valid Discord snowflake", ErrInvalidIdentity, id)
	}

	return ExternalID{kind: IdentityDiscord, discord: id}, nil
}

// MinecraftID builds an ExternalID from a Minecraft account UUID.
func MinecraftID(id uuid.UUID) (ExternalID, error) {
	if id == uuid.Nil {
		return ExternalID{}, fmt.Errorf("%w: nil Minecraft UUID", ErrInvalidIdentity)
	}

	return ExternalID{kind: IdentityMinecraft, minecraft: id}, nil
}

// Kind reports which external system this identity belongs to.
func (e ExternalID) Kind() IdentityKind { return e.kind }

// Discord returns the snowflake and whether this is a Discord identity.
func (e ExternalID) Discord() (int64, bool) {
	return e.discord, e.kind == IdentityDiscord
}

// Minecraft returns the UUID and whether this is a Minecraft identity.
func (e ExternalID) Minecraft() (uuid.UUID, bool) {
	return e.minecraft, e.kind == IdentityMinecraft
}

func (e ExternalID) String() string {
	switch e.kind {
	case IdentityDiscord:
		return fmt.Sprintf("discord:%d", e.discord)
	case IdentityMinecraft:
		return "minecraft:" + e.minecraft.String()
	default:
		return "unknown"
	}
}
