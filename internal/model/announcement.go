package model

// Announcement locates the chat message that announces a calendar event.
// Once created the pair never changes; only the message content is edited.
type Announcement struct {
	ChannelID string `json:"channelId"`
	MessageID string `json:"messageId"`
}
