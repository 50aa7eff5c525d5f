package discord

const (
	DefaultAPIURL    = "https://discord.com/api/v10"
	MaxContentLength = 2000

	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"

	userAgent          = "DiscordBot (https://github.com/event-announcer, 1.0)"
	codeUnknownMessage = 10008
)
