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

const (
	gameSelectID    = "game_select"
	scheduleModalID = "schedule_modal:"
)

// games is the fixed catalog offered by the guided /schedule flow. The raw
// !schedule command accepts arbitrary titles.
var games = []string{
	"Phasmophobia",
	"Demonologist",
	"REPO",
	"Lethal Company",
	"Backrooms: Escape Together",
	"Content Warning",
	"Panicore",
	"The Headliners",
}

// Validation failures are returned as complete user-facing messages so both
// interaction styles can echo them verbatim.
var (
	errNeedTimezone = errors.New("⚠️ Please set your timezone first using /settimezone <timezone>.")
	errBadDateTime  = errors.New("❌ Could not parse date/time. Use format: Month-Day Time (e.g., August-17 8:30pm).")
	errPastEvent    = errors.New("⚠️ Cannot schedule past events. Please provide a future time.")
	errStorage      = errors.New("Sorry, I couldn't save the event. Please try again later.")
)

// scheduleEvent is the shared parse→validate→persist→schedule pipeline behind
// the modal flow and the !schedule prefix command.
func (b *Bot) scheduleEvent(game, dateText, timeText, notes, authorID string) (event.Event, error) {
	loc, err := b.zones.Location(authorID)
	if errors.Is(err, store.ErrNoTimezone) {
		return event.Event{}, errNeedTimezone
	}

	now := time.Now().UTC()
	at, err := event.ParseLocal(dateText, timeText, loc, now)
	if err != nil {
		log.Info("rejected date/time input", "date", dateText, "time", timeText, "error", err)
		return event.Event{}, errBadDateTime
	}
	if !at.After(now) {
		return event.Event{}, errPastEvent
	}

	ev := event.Event{Game: game, At: at, Notes: notes, Author: authorID}

	events, err := b.events.Load()
	if err != nil {
		log.Error("could not load event log", "error", err)
		return event.Event{}, errStorage
	}
	events = append(events, ev)
	if err := b.events.Save(events); err != nil {
		log.Error("could not save event log", "error", err)
		return event.Event{}, errStorage
	}

	b.sched.Schedule(ev)
	return ev, nil
}

// handleSchedule starts the guided flow with the game dropdown.
func (b *Bot) handleSchedule(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := make([]discordgo.SelectMenuOption, 0, len(games))
	for _, g := range games {
		options = append(options, discordgo.SelectMenuOption{Label: g, Value: g})
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Select a game to schedule:",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    gameSelectID,
							Placeholder: "Choose a game...",
							Options:     options,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Error("could not open game dropdown", "error", err)
	}
}

// handleGameSelect answers the dropdown with the date/time/notes modal. The
// chosen game rides along in the modal's custom ID.
func (b *Bot) handleGameSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	game := i.MessageComponentData().Values[0]

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: scheduleModalID + game,
			Title:    "Schedule Horror Game",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						&discordgo.TextInput{
							CustomID: "date",
							Label:    "Date (e.g. April-16)",
							Style:    discordgo.TextInputShort,
							Required: true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						&discordgo.TextInput{
							CustomID: "time",
							Label:    "Time (e.g. 8:30pm)",
							Style:    discordgo.TextInputShort,
							Required: true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						&discordgo.TextInput{
							CustomID: "notes",
							Label:    "Notes (optional)",
							Style:    discordgo.TextInputParagraph,
							Required: false,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Error("could not open schedule modal", "error", err)
	}
}

func (b *Bot) handleScheduleModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	game := strings.TrimPrefix(data.CustomID, scheduleModalID)

	date := data.Components[0].(*discordgo.ActionsRow).Components[0].(*discordgo.TextInput).Value
	timeText := data.Components[1].(*discordgo.ActionsRow).Components[0].(*discordgo.TextInput).Value
	notes := data.Components[2].(*discordgo.ActionsRow).Components[0].(*discordgo.TextInput).Value

	user := interactionUser(i)
	ev, err := b.scheduleEvent(game, date, timeText, notes, user.ID)
	if err != nil {
		b.respondEphemeral(s, i, err.Error())
		return
	}

	notesLine := ev.Notes
	if notesLine == "" {
		notesLine = "None"
	}
	b.respond(s, i, fmt.Sprintf("✅ Scheduled **%s** for %s\nNotes: %s",
		ev.Game, event.FormatLocal(ev, b.locationFor(user.ID)), notesLine))
}

// messageHandler serves the raw-text command surface.
func (b *Bot) messageHandler(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}
	switch {
	case strings.HasPrefix(m.Content, "!schedule "):
		b.handleScheduleMessage(s, m)
	case strings.TrimSpace(m.Content) == "!list":
		b.handleListMessage(s, m)
	}
}

func (b *Bot) handleScheduleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// !schedule <game> <Month-Day> <H:MMam/pm> [notes...]
	fields := strings.Fields(m.Content)[1:]
	if len(fields) < 3 {
		b.send(s, m.ChannelID, "❌ [SOL-1] Temporal input invalid. Use !schedule <game> <Month-Day> <HH:MMam/pm> [notes]")
		return
	}

	ev, err := b.scheduleEvent(fields[0], fields[1], fields[2], strings.Join(fields[3:], " "), m.Author.ID)
	if err != nil {
		b.send(s, m.ChannelID, err.Error())
		return
	}

	b.send(s, m.ChannelID, fmt.Sprintf(
		"📡 [SOL-1] Log entry accepted.\n"+
			"Event: **%s** scheduled for %s UTC.\n"+
			"Notification beacon primed (T-minus 30 min).",
		ev.Game, ev.At.Format("January 2 at 3:04 PM")))
}

func (b *Bot) handleListMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	events, err := b.events.Load()
	if err != nil {
		log.Error("could not load event log", "error", err)
		b.send(s, m.ChannelID, "Could not read the event log. Please try again later.")
		return
	}

	upcoming := event.Upcoming(events, time.Now().UTC())
	if len(upcoming) == 0 {
		b.send(s, m.ChannelID, "❌ No upcoming events found.")
		return
	}

	var msg strings.Builder
	msg.WriteString("📅 **Upcoming Events:**\n")
	for _, ev := range upcoming {
		notes := ev.Notes
		if notes == "" {
			notes = "No further data."
		}
		msg.WriteString(fmt.Sprintf("**%s** - %s\nNotes: %s\nScheduled by: <@%s>\n\n",
			ev.Game, ev.At.Format("January 2 at 3:04 PM UTC"), notes, ev.Author))
	}
	b.send(s, m.ChannelID, msg.String())
}

func (b *Bot) send(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Error("channel message send failed", "channel", channelID, "error", err)
	}
}
