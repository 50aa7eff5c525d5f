package sqlite

import "event-announcer/internal/model"

type announcement struct {
	EventID   string `db:"event_id"`
	ChannelID string `db:"channel_id"`
	MessageID string `db:"message_id"`
}

func (a announcement) Convert() model.Announcement {
	return model.Announcement{
		ChannelID: a.ChannelID,
		MessageID: a.MessageID,
	}
}
