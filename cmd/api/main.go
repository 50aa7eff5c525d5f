package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-announcer/config"
	_ "event-announcer/docs" // Swagger docs
	annChat "event-announcer/internal/announcement/chat"
	annRepo "event-announcer/internal/announcement/repository"
	annRedis "event-announcer/internal/announcement/repository/redis"
	annSQLite "event-announcer/internal/announcement/repository/sqlite"
	annUC "event-announcer/internal/announcement/usecase"
	discordDelivery "event-announcer/internal/event/delivery/discord"
	eventHTTP "event-announcer/internal/event/delivery/http"
	eventUC "event-announcer/internal/event/usecase"
	"event-announcer/internal/httpserver"
	"event-announcer/internal/middleware"
	"event-announcer/pkg/discord"
	"event-announcer/pkg/gcalendar"
	"event-announcer/pkg/log"
)

// @title       Event Announcer API
// @description Discord slash-command bot and admin API for the organization calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Event Announcer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.GoogleCalendar.Timezone, err)
		return
	}

	// 3. Mapping store
	repo, probe, closeStore, err := openMappingStore(ctx, cfg.MappingStore, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open mapping store: %v", err)
		return
	}
	defer closeStore()
	logger.Infof(ctx, "Mapping store: %s", cfg.MappingStore.Driver)

	// 4. External clients
	discordClient := discord.NewClient(cfg.Discord.BotToken, cfg.Discord.ApplicationID)
	if cfg.Discord.APIURL != "" {
		discordClient.SetAPIURL(cfg.Discord.APIURL)
	}

	publicKey, err := discord.ParsePublicKey(cfg.Discord.PublicKey)
	if err != nil {
		logger.Errorf(ctx, "Invalid Discord public key: %v", err)
		return
	}

	calendarClient, err := newCalendarClient(ctx, cfg.GoogleCalendar)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Calendar: %v", err)
		return
	}
	logger.Info(ctx, "✅ Google Calendar initialized")

	// 5. Event domain
	announcer := annUC.New(logger, annUC.Dependencies{
		Repo:      repo,
		Chat:      annChat.NewDiscord(discordClient),
		ChannelID: cfg.Discord.ChannelID,
		Location:  loc,
	})

	events := eventUC.New(logger, eventUC.Dependencies{
		Calendar:   calendarClient,
		Announcer:  announcer,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Location:   loc,
	})

	interactionHandler := discordDelivery.New(logger, discordDelivery.Config{
		UseCase:         events,
		Responder:       discordClient,
		PublicKey:       publicKey,
		RateLimitPerMin: cfg.Interactions.RateLimitPerMin,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		InteractionHandler: interactionHandler,
		EventHandler:       eventHTTP.New(logger, events, loc),
		Middleware:         middleware.New(logger, cfg.Admin.Token, cfg.Admin.AllowedOrigin),
		ReadinessProbe:     probe,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Discord registration runs once the server can answer Discord's PING.
	go registerWithDiscord(ctx, logger, discordClient, cfg.Discord)

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newCalendarClient(ctx context.Context, cfg config.GoogleCalendarConfig) (*gcalendar.Client, error) {
	if cfg.ServiceAccountEmail != "" && cfg.PrivateKey != "" {
		return gcalendar.NewClientFromServiceAccount(ctx, cfg.ServiceAccountEmail, cfg.PrivateKey)
	}
	if cfg.CredentialsPath != "" {
		return gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	}
	return nil, fmt.Errorf("no Google credentials: set google_calendar.credentials_path or GOOGLE_SA_EMAIL and GOOGLE_SA_PRIVATE_KEY")
}

// openMappingStore opens the configured backend and returns the repository,
// a readiness probe and a close function.
func openMappingStore(ctx context.Context, cfg config.MappingStoreConfig, l log.Logger) (annRepo.Repository, func(context.Context) error, func(), error) {
	switch cfg.Driver {
	case config.StoreSQLite:
		db, err := annSQLite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		repo, err := annSQLite.New(db, l)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return repo, db.PingContext, func() { db.Close() }, nil

	default:
		client, err := annRedis.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		probe := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		if err := probe(ctx); err != nil {
			l.Warnf(ctx, "Redis not reachable yet: %v", err)
		}
		return annRedis.New(client, l), probe, func() { client.Close() }, nil
	}
}

// registerWithDiscord publishes the slash commands and, when a public URL is
// known, points the application's interactions endpoint at this server.
func registerWithDiscord(ctx context.Context, l log.Logger, client *discord.Client, cfg config.DiscordConfig) {
	if cfg.RegisterCommands {
		if cfg.GuildID == "" {
			l.Warn(ctx, "Skipping command registration: discord.guild_id is not set")
		} else if err := client.RegisterGuildCommands(ctx, cfg.GuildID, discordDelivery.Commands()); err != nil {
			l.Warnf(ctx, "Failed to register slash commands: %v", err)
		} else {
			l.Infof(ctx, "✅ Slash commands registered in guild %s", cfg.GuildID)
		}
	}

	endpoint := cfg.InteractionsURL
	if endpoint == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		endpoint = ngrokURL + "/interactions"
		l.Infof(ctx, "Auto-detected ngrok URL: %s", endpoint)
	}
	if endpoint == "" {
		return
	}

	if err := client.SetInteractionsEndpoint(ctx, endpoint); err != nil {
		l.Warnf(ctx, "Failed to set interactions endpoint: %v", err)
		return
	}
	l.Infof(ctx, "✅ Interactions endpoint set to %s", endpoint)
}
