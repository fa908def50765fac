package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/katy-enrqz/BSC-SOL-1/event"
)

// Announce implements schedule.Notifier. The announcement channel and horror
// role are resolved at fire time; any resolution or delivery failure is
// returned for the scheduler to log. The reminder is single-attempt.
func (b *Bot) Announce(ev event.Event) error {
	guild, err := b.session.Guild(b.cfg.GuildID)
	if err != nil {
		return fmt.Errorf("resolve guild %s: %w", b.cfg.GuildID, err)
	}

	var role *discordgo.Role
	for _, r := range guild.Roles {
		if r.ID == b.cfg.HorrorRoleID {
			role = r
			break
		}
	}
	if role == nil {
		return fmt.Errorf("horror role %s not found in guild", b.cfg.HorrorRoleID)
	}

	notes := ev.Notes
	if notes == "" {
		notes = "No further data."
	}
	msg := fmt.Sprintf(
		"⚠️ **SOL-1 Log Transmission**\n"+
			"%s, anomaly report detected.\n"+
			"Scheduled Event: **%s**\n"+
			"Commencement ETA: 30 minutes\n"+
			"Notes: %s\n"+
			"End of transmission.",
		role.Mention(), ev.Game, notes)

	if _, err := b.session.ChannelMessageSend(b.cfg.EventChannelID, msg); err != nil {
		return fmt.Errorf("send reminder to channel %s: %w", b.cfg.EventChannelID, err)
	}
	return nil
}
