package bot

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/katy-enrqz/BSC-SOL-1/config"
	"github.com/katy-enrqz/BSC-SOL-1/schedule"
	"github.com/katy-enrqz/BSC-SOL-1/store"
)

// Bot wires the Discord session to the stores and the reminder scheduler.
// Command handlers run one at a time on the session's dispatch goroutine (see
// SyncEvents in New), so each load-modify-save cycle over the flat-file stores
// completes before the next command starts.
type Bot struct {
	cfg     config.Config
	session *discordgo.Session
	zones   *store.TimezoneStore
	events  *store.EventStore
	sched   *schedule.Scheduler
}

func New(cfg config.Config) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	// By default discordgo runs every handler in its own goroutine, which
	// would interleave the stores' load-modify-save cycles. Handle events
	// in dispatch order instead.
	session.SyncEvents = true

	b := &Bot{
		cfg:     cfg,
		session: session,
		zones:   store.NewTimezoneStore(cfg.TimezonesFile),
		events:  store.NewEventStore(cfg.EventsFile),
	}
	b.sched = schedule.New(b)

	session.AddHandler(b.interactionHandler)
	session.AddHandler(b.messageHandler)
	return b, nil
}

// Run opens the gateway connection, registers the slash commands, replays
// pending reminders from the event log and blocks until SIGINT/SIGTERM.
func (b *Bot) Run() error {
	log.Info("Opening Discord connection...")
	if err := b.session.Open(); err != nil {
		return err
	}
	defer b.session.Close()

	log.Info("Registering commands...")
	if err := b.registerCommands(); err != nil {
		return err
	}

	events, err := b.events.Load()
	if err != nil {
		log.Error("could not load event log for reminder replay", "error", err)
	} else {
		n := b.sched.ReplayAll(events)
		log.Info("reminder replay complete", "stored", len(events), "scheduled", n)
	}

	log.Info("SOL-1 core online, surveillance initialized")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Shutting down...")
	return nil
}

// hasAdministrative is the capability gate for privileged commands: the member
// must hold one of the configured admin role names.
func (b *Bot) hasAdministrative(m *discordgo.Member) bool {
	if m == nil {
		return false
	}
	roles, err := b.session.GuildRoles(b.cfg.GuildID)
	if err != nil {
		log.Error("could not resolve guild roles", "error", err)
		return false
	}
	names := make(map[string]string, len(roles))
	for _, r := range roles {
		names[r.ID] = r.Name
	}
	for _, id := range m.Roles {
		for _, allowed := range b.cfg.AdminRoles {
			if names[id] == allowed {
				return true
			}
		}
	}
	return false
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
