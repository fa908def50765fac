package config

import "github.com/kelseyhightower/envconfig"

// Config holds everything the bot reads from the environment. main loads a
// local .env file first, so either works.
type Config struct {
	BotToken       string   `envconfig:"BOT_TOKEN" required:"true"`
	AppID          string   `envconfig:"APP_ID" required:"true"`
	GuildID        string   `envconfig:"GUILD_ID" required:"true"`
	EventChannelID string   `envconfig:"EVENT_CHANNEL_ID" required:"true"`
	HorrorRoleID   string   `envconfig:"HORROR_ROLE_ID" required:"true"`
	AdminRoles     []string `envconfig:"ADMIN_ROLES" default:"Admin,Moderator"`
	EventsFile     string   `envconfig:"EVENTS_FILE" default:"log_entries.json"`
	TimezonesFile  string   `envconfig:"TIMEZONES_FILE" default:"timezone.json"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
