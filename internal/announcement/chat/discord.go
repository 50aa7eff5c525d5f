package chat

import (
	"context"
	"errors"
	"fmt"

	"event-announcer/internal/announcement"
	"event-announcer/internal/model"
	pkgDiscord "event-announcer/pkg/discord"
)

type discordChat struct {
	client *pkgDiscord.Client
}

// NewDiscord adapts a Discord REST client to announcement.Chat, translating
// "Unknown Message" answers to announcement.ErrMessageGone and other API
// rejections to announcement.ErrChatRejected.
func NewDiscord(client *pkgDiscord.Client) announcement.Chat {
	return &discordChat{client: client}
}

func (d *discordChat) CreateMessage(ctx context.Context, channelID, content string) (model.Announcement, error) {
	msg, err := d.client.CreateMessage(ctx, channelID, content)
	if err != nil {
		return model.Announcement{}, translate(err)
	}
	return model.Announcement{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

func (d *discordChat) EditMessage(ctx context.Context, channelID, messageID, content string) error {
	if _, err := d.client.EditMessage(ctx, channelID, messageID, content); err != nil {
		return translate(err)
	}
	return nil
}

func (d *discordChat) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := d.client.DeleteMessage(ctx, channelID, messageID); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, pkgDiscord.ErrNotFound) {
		return fmt.Errorf("%w: %v", announcement.ErrMessageGone, err)
	}
	var apiErr *pkgDiscord.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", announcement.ErrChatRejected, err)
	}
	return err
}
