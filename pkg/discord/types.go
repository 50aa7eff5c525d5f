package discord

import (
	"encoding/json"
	"strings"
)

// Message is the subset of a Discord message the service needs.
type Message struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
}

type messagePayload struct {
	Content string `json:"content"`
}

// InteractionType identifies the kind of an incoming interaction.
type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
)

// ResponseType is the type of an interaction response.
type ResponseType int

const (
	ResponsePong                   ResponseType = 1
	ResponseChannelMessage         ResponseType = 4
	ResponseDeferredChannelMessage ResponseType = 5
)

const (
	MessageFlagEphemeral = 1 << 6
	OptionTypeString     = 3
	CommandTypeChatInput = 1
)

// Interaction is an incoming interaction delivered to the interactions endpoint.
type Interaction struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	Type          InteractionType `json:"type"`
	Data          *CommandData    `json:"data,omitempty"`
	GuildID       string          `json:"guild_id,omitempty"`
	ChannelID     string          `json:"channel_id,omitempty"`
	Member        *Member         `json:"member,omitempty"`
	User          *User           `json:"user,omitempty"`
	Token         string          `json:"token"`
}

// Invoker returns the user who triggered the interaction, in a guild or a DM.
func (i Interaction) Invoker() *User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// CommandData is the payload of a slash command invocation.
type CommandData struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Options []CommandOption `json:"options,omitempty"`
}

// StringOption returns the trimmed value of a string option and whether it
// was supplied with a non-empty value.
func (d *CommandData) StringOption(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, o := range d.Options {
		if o.Name != name {
			continue
		}
		var s string
		if err := json.Unmarshal(o.Value, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	return "", false
}

// CommandOption is a single named argument of a slash command.
type CommandOption struct {
	Name  string          `json:"name"`
	Type  int             `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Member is a guild member.
type Member struct {
	User *User `json:"user,omitempty"`
}

// User is a Discord user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// InteractionResponse is the synchronous reply to an interaction.
type InteractionResponse struct {
	Type ResponseType             `json:"type"`
	Data *InteractionResponseData `json:"data,omitempty"`
}

// InteractionResponseData is the message part of an InteractionResponse.
type InteractionResponseData struct {
	Content string `json:"content,omitempty"`
	Flags   int    `json:"flags,omitempty"`
}

// ApplicationCommand is a slash command definition used for registration.
type ApplicationCommand struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Type        int                        `json:"type,omitempty"`
	Options     []ApplicationCommandOption `json:"options,omitempty"`
}

// ApplicationCommandOption describes one argument of an ApplicationCommand.
type ApplicationCommandOption struct {
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}
