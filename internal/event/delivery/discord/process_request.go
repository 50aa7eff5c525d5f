package discord

import (
	"event-announcer/internal/event"
	pkgDiscord "event-announcer/pkg/discord"
)

func toAddInput(d *pkgDiscord.CommandData) event.AddEventInput {
	var in event.AddEventInput
	in.Title, _ = d.StringOption(optionTitle)
	in.Start, _ = d.StringOption(optionStart)
	in.End, _ = d.StringOption(optionEnd)
	in.Location, _ = d.StringOption(optionLocation)
	in.Description, _ = d.StringOption(optionDesc)
	return in
}

func toEditInput(d *pkgDiscord.CommandData) event.EditEventInput {
	in := event.EditEventInput{
		Title:       optional(d, optionTitle),
		Start:       optional(d, optionStart),
		End:         optional(d, optionEnd),
		Location:    optional(d, optionLocation),
		Description: optional(d, optionDesc),
	}
	in.ID, _ = d.StringOption(optionID)
	return in
}

func optional(d *pkgDiscord.CommandData, name string) *string {
	v, ok := d.StringOption(name)
	if !ok {
		return nil
	}
	return &v
}
