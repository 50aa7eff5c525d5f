package discord

import (
	"fmt"

	"event-announcer/internal/event"
	pkgDiscord "event-announcer/pkg/discord"
)

const (
	replyUnknownCommand = "Unknown command."
	replyRateLimited    = "You're sending commands too fast. Try again in a minute."
)

func createdReply(out event.EventOutput) string {
	return fmt.Sprintf("Created: %s\nID: `%s`", out.Event.Link, out.Event.ID)
}

func updatedReply(out event.EventOutput) string {
	return "Updated: " + out.Event.Link
}

func deletedReply(id string) string {
	return "Deleted " + id
}

func ephemeral(content string) pkgDiscord.InteractionResponse {
	return pkgDiscord.InteractionResponse{
		Type: pkgDiscord.ResponseChannelMessage,
		Data: &pkgDiscord.InteractionResponseData{
			Content: content,
			Flags:   pkgDiscord.MessageFlagEphemeral,
		},
	}
}

func deferred() pkgDiscord.InteractionResponse {
	return pkgDiscord.InteractionResponse{Type: pkgDiscord.ResponseDeferredChannelMessage}
}

func pong() pkgDiscord.InteractionResponse {
	return pkgDiscord.InteractionResponse{Type: pkgDiscord.ResponsePong}
}
