package discord

import pkgDiscord "event-announcer/pkg/discord"

// Command names.
const (
	CommandAddEvent    = "addevent"
	CommandEditEvent   = "editevent"
	CommandDeleteEvent = "deleteevent"
)

// Option names shared by the commands.
const (
	optionID       = "id"
	optionTitle    = "title"
	optionStart    = "start"
	optionEnd      = "end"
	optionLocation = "location"
	optionDesc     = "desc"
)

// Commands returns the slash command definitions registered on startup.
func Commands() []pkgDiscord.ApplicationCommand {
	return []pkgDiscord.ApplicationCommand{
		{
			Name:        CommandAddEvent,
			Description: "Create a calendar event and announce it",
			Type:        pkgDiscord.CommandTypeChatInput,
			Options: []pkgDiscord.ApplicationCommandOption{
				stringOption(optionTitle, "Event title", true),
				stringOption(optionStart, "Start, e.g. 2025-09-16T18:00", true),
				stringOption(optionEnd, "End, e.g. 2025-09-16T19:30", true),
				stringOption(optionLocation, "Where", false),
				stringOption(optionDesc, "Description", false),
			},
		},
		{
			Name:        CommandEditEvent,
			Description: "Edit a calendar event and refresh its announcement",
			Type:        pkgDiscord.CommandTypeChatInput,
			Options: []pkgDiscord.ApplicationCommandOption{
				stringOption(optionID, "Calendar event ID", true),
				stringOption(optionTitle, "New title", false),
				stringOption(optionStart, "New start", false),
				stringOption(optionEnd, "New end", false),
				stringOption(optionLocation, "New location", false),
				stringOption(optionDesc, "New description", false),
			},
		},
		{
			Name:        CommandDeleteEvent,
			Description: "Delete a calendar event and its announcement",
			Type:        pkgDiscord.CommandTypeChatInput,
			Options: []pkgDiscord.ApplicationCommandOption{
				stringOption(optionID, "Calendar event ID", true),
			},
		},
	}
}

func stringOption(name, description string, required bool) pkgDiscord.ApplicationCommandOption {
	return pkgDiscord.ApplicationCommandOption{
		Type:        pkgDiscord.OptionTypeString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}
