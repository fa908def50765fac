package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/katy-enrqz/BSC-SOL-1/event"
	"github.com/katy-enrqz/BSC-SOL-1/store"
)

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "settimezone",
			Description: "Set your timezone for event scheduling.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "zone",
					Description: "Enter a timezone like 'America/New_York'",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{Name: "mytimezone", Description: "Check your currently set timezone."},
		{Name: "next", Description: "Show the next upcoming horror game event."},
		{Name: "listevents", Description: "View all upcoming horror game events."},
		{Name: "clearevents", Description: "Remove all past events from storage."},
		{Name: "schedule", Description: "Schedule a horror game event using dropdown"},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.cfg.AppID, b.cfg.GuildID, cmd); err != nil {
			return fmt.Errorf("cannot create slash command %q: %w", cmd.Name, err)
		}
	}
	return nil
}

func (b *Bot) interactionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "settimezone":
			b.handleSetTimezone(s, i)
		case "mytimezone":
			b.handleMyTimezone(s, i)
		case "next":
			b.handleNext(s, i)
		case "listevents":
			b.handleListEvents(s, i)
		case "clearevents":
			b.handleClearEvents(s, i)
		case "schedule":
			b.handleSchedule(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == gameSelectID {
			b.handleGameSelect(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if strings.HasPrefix(i.ModalSubmitData().CustomID, scheduleModalID) {
			b.handleScheduleModal(s, i)
		}
	}
}

func (b *Bot) handleSetTimezone(s *discordgo.Session, i *discordgo.InteractionCreate) {
	zone := i.ApplicationCommandData().Options[0].StringValue()
	user := interactionUser(i)

	if err := b.zones.Set(user.ID, zone); err != nil {
		if errors.Is(err, store.ErrInvalidZone) {
			b.respondEphemeral(s, i, "❌ Invalid timezone. Use a format like America/New_York.")
			return
		}
		log.Error("could not persist timezone", "user", user.ID, "error", err)
		b.respondEphemeral(s, i, "Sorry, I couldn't save your timezone. Please try again later.")
		return
	}
	b.respondEphemeral(s, i, fmt.Sprintf("✅ Timezone set to %s.", zone))
}

func (b *Bot) handleMyTimezone(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	zone, ok := b.zones.Get(user.ID)
	if !ok {
		b.respondEphemeral(s, i, "🕒 You have no timezone set. Use /settimezone first.")
		return
	}
	b.respondEphemeral(s, i, fmt.Sprintf("🕒 Your current timezone is %s.", zone))
}

func (b *Bot) handleNext(s *discordgo.Session, i *discordgo.InteractionCreate) {
	events, err := b.events.Load()
	if err != nil {
		log.Error("could not load event log", "error", err)
		b.respondEphemeral(s, i, "Could not read the event log. Please try again later.")
		return
	}

	ev, ok := event.Next(events, time.Now().UTC())
	if !ok {
		b.respondEphemeral(s, i, "📭 No upcoming events found.")
		return
	}

	notes := ev.Notes
	if notes == "" {
		notes = "None"
	}
	loc := b.locationFor(interactionUser(i).ID)
	b.respond(s, i, fmt.Sprintf(
		"📅 **Next Horror Event:**\n"+
			"🎮 Game: **%s**\n"+
			"🕒 Time: %s\n"+
			"📝 Notes: %s\n"+
			"👤 Scheduled by: <@%s>",
		ev.Game, event.FormatLocal(ev, loc), notes, ev.Author))
}

func (b *Bot) handleListEvents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	events, err := b.events.Load()
	if err != nil {
		log.Error("could not load event log", "error", err)
		b.respondEphemeral(s, i, "Could not read the event log. Please try again later.")
		return
	}

	upcoming := event.Upcoming(events, time.Now().UTC())
	if len(upcoming) == 0 {
		b.respondEphemeral(s, i, "📭 No upcoming events found.")
		return
	}

	loc := b.locationFor(interactionUser(i).ID)
	var msg strings.Builder
	msg.WriteString("🗓 **Upcoming Events:**\n")
	for _, ev := range upcoming {
		msg.WriteString(fmt.Sprintf("\n• **%s** on %s (Scheduled by <@%s>)",
			ev.Game, event.FormatLocal(ev, loc), ev.Author))
	}
	b.respond(s, i, msg.String())
}

func (b *Bot) handleClearEvents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.hasAdministrative(i.Member) {
		b.respondEphemeral(s, i, "🚫 You don't have permission to use this command.")
		return
	}

	events, err := b.events.Load()
	if err != nil {
		log.Error("could not load event log", "error", err)
		b.respondEphemeral(s, i, "Could not read the event log. Please try again later.")
		return
	}

	kept, removed := event.ClearPast(events, time.Now().UTC())
	if err := b.events.Save(kept); err != nil {
		log.Error("could not save event log", "error", err)
		b.respondEphemeral(s, i, "Could not update the event log. Please try again later.")
		return
	}
	b.respondEphemeral(s, i, fmt.Sprintf("🧹 Cleared past events. %d removed, %d remain.", removed, len(kept)))
}

// locationFor is the display fallback: no preference or an unloadable one
// renders in UTC. Scheduling uses zones.Location directly and prompts instead.
func (b *Bot) locationFor(userID string) *time.Location {
	loc, err := b.zones.Location(userID)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Error("interaction respond failed", "error", err)
	}
}

func (b *Bot) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error("interaction respond failed", "error", err)
	}
}
