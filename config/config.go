package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Mapping store drivers.
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Event announcer specifics
	Discord        DiscordConfig
	GoogleCalendar GoogleCalendarConfig
	MappingStore   MappingStoreConfig

	// Admin API and interactions endpoint
	Admin        AdminConfig
	Interactions InteractionsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DiscordConfig struct {
	BotToken      string
	ApplicationID string
	PublicKey     string // hex Ed25519 key from the developer portal
	GuildID       string // guild the slash commands are registered in
	ChannelID     string // announcement channel
	APIURL        string
	// InteractionsURL is the public URL of POST /interactions. When empty and
	// NgrokAPI is set, the ngrok tunnel URL is used instead.
	InteractionsURL string
	NgrokAPI        string
	// RegisterCommands overwrites the guild's slash commands on startup.
	RegisterCommands bool
}

type GoogleCalendarConfig struct {
	CredentialsPath     string
	ServiceAccountEmail string
	PrivateKey          string
	CalendarID          string
	Timezone            string // IANA name, e.g. America/Indiana/Indianapolis
}

type MappingStoreConfig struct {
	Driver     string // redis | sqlite
	RedisURL   string
	SQLitePath string
}

type AdminConfig struct {
	Token         string
	AllowedOrigin string
}

type InteractionsConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Discord
	cfg.Discord.BotToken = lastSet("discord.bot_token", "discord_token", "discord_bot_token")
	cfg.Discord.ApplicationID = lastSet("discord.application_id", "discord_app_id")
	cfg.Discord.PublicKey = lastSet("discord.public_key", "discord_public_key")
	cfg.Discord.GuildID = lastSet("discord.guild_id", "discord_guild_id")
	cfg.Discord.ChannelID = lastSet("discord.channel_id", "discord_announce_channel_id")
	cfg.Discord.APIURL = viper.GetString("discord.api_url")
	cfg.Discord.InteractionsURL = lastSet("discord.interactions_url", "discord_interactions_url")
	cfg.Discord.NgrokAPI = viper.GetString("discord.ngrok_api")
	cfg.Discord.RegisterCommands = viper.GetBool("discord.register_commands")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = lastSet("google_calendar.credentials_path", "google_calendar_credentials")
	cfg.GoogleCalendar.ServiceAccountEmail = lastSet("google_calendar.service_account_email", "google_sa_email")
	cfg.GoogleCalendar.PrivateKey = lastSet("google_calendar.private_key", "google_sa_private_key")
	cfg.GoogleCalendar.CalendarID = lastSet("google_calendar.calendar_id", "calendar_id")
	cfg.GoogleCalendar.Timezone = lastSet("google_calendar.timezone", "timezone")

	// Mapping store
	cfg.MappingStore.Driver = strings.ToLower(viper.GetString("mapping_store.driver"))
	cfg.MappingStore.RedisURL = lastSet("mapping_store.redis_url", "redis_url")
	cfg.MappingStore.SQLitePath = viper.GetString("mapping_store.sqlite_path")

	// Admin
	cfg.Admin.Token = lastSet("admin.token", "admin_token")
	cfg.Admin.AllowedOrigin = lastSet("admin.allowed_origin", "allowed_origin")

	cfg.Interactions.RateLimitPerMin = viper.GetInt("interactions.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("discord.register_commands", true)
	viper.SetDefault("google_calendar.timezone", "America/Indiana/Indianapolis")
	viper.SetDefault("mapping_store.driver", StoreRedis)
	viper.SetDefault("mapping_store.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("mapping_store.sqlite_path", "announcements.db")
	viper.SetDefault("interactions.rate_limit_per_min", 20)
}

// validate checks the settings the service cannot start without.
func validate(cfg *Config) error {
	switch {
	case cfg.Discord.BotToken == "":
		return fmt.Errorf("discord bot token is required (discord.bot_token or DISCORD_TOKEN)")
	case cfg.Discord.ApplicationID == "":
		return fmt.Errorf("discord application id is required (discord.application_id or DISCORD_APP_ID)")
	case cfg.Discord.PublicKey == "":
		return fmt.Errorf("discord public key is required (discord.public_key or DISCORD_PUBLIC_KEY)")
	case cfg.Discord.ChannelID == "":
		return fmt.Errorf("announcement channel is required (discord.channel_id or DISCORD_ANNOUNCE_CHANNEL_ID)")
	case cfg.GoogleCalendar.CalendarID == "":
		return fmt.Errorf("calendar id is required (google_calendar.calendar_id or CALENDAR_ID)")
	}

	switch cfg.MappingStore.Driver {
	case StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("unknown mapping_store.driver %q (want %s or %s)", cfg.MappingStore.Driver, StoreRedis, StoreSQLite)
	}
	return nil
}

// lastSet returns the last non-empty value among keys. The config key comes
// first; the flat env names after it override it.
func lastSet(keys ...string) string {
	var val string
	for _, key := range keys {
		if v := expandEnvVar(viper.GetString(key)); v != "" {
			val = v
		}
	}
	return val
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}
