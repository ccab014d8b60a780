// Package dto holds the JSON request and response shapes of the HTTP API.
package dto

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/Laincy/reconnected-se/internal/domain"
)

// RegisterAccountRequest registers a new account against exactly one
// external identity. Discord snowflakes travel as strings: they exceed the
// integer range JavaScript clients can represent losslessly.
type RegisterAccountRequest struct {
	DiscordID   string `json:"discord_id,omitempty"`
	MinecraftID string `json:"minecraft_id,omitempty"`
}

// ToExternalID validates the request into a domain identity.
func (r *RegisterAccountRequest) ToExternalID() (domain.ExternalID, error) {
	switch {
	case r.DiscordID != "" && r.MinecraftID != "":
		return domain.ExternalID{}, fmt.Errorf("%w: provide either discord_id or minecraft_id, not both", domain.ErrInvalidIdentity)
	case r.DiscordID != "":
		snowflake, err := strconv.ParseInt(r.DiscordID, 10, 64)
		if err != nil {
			return domain.ExternalID{}, fmt.Errorf("%w: %q is not a valid Discord snowflake", domain.ErrInvalidIdentity, r.DiscordID)
		}
		return domain.DiscordID(snowflake)
	case r.MinecraftID != "":
		id, err := uuid.Parse(r.MinecraftID)
		if err != nil {
			return domain.ExternalID{}, fmt.Errorf("%w: %q is not a valid Minecraft UUID", domain.ErrInvalidIdentity, r.MinecraftID)
		}
		return domain.MinecraftID(id)
	default:
		return domain.ExternalID{}, fmt.Errorf("%w: provide discord_id or minecraft_id", domain.ErrInvalidIdentity)
	}
}
