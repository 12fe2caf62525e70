// Package app wires the match sources, the pagination core, and the
// optional stats store into a runnable Telegram bot.
package app

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/bipuldey19/sportsonline/core/bootstrap"
	coretelegram "github.com/bipuldey19/sportsonline/core/telegram"
	"github.com/bipuldey19/sportsonline/core/telegram/commands"
	tghelpers "github.com/bipuldey19/sportsonline/core/telegram/helpers"
	"github.com/bipuldey19/sportsonline/core/telegram/netutil"
	"github.com/bipuldey19/sportsonline/core/telegram/router"
	"github.com/bipuldey19/sportsonline/internal/source/sportshub"
	"github.com/bipuldey19/sportsonline/internal/source/streamed"
	"github.com/bipuldey19/sportsonline/internal/stats"
)

// Callback registry keys owned by the app. Every inline button routes
// through one of these.
const (
	cbSportshub = "sh"
	cbStreamed  = "st"
	cbNoop      = "noop"
)

// App aggregates the bot's services.
type App struct {
	cfg *Config

	sportshub *sportshubService
	streamed  *streamedService
	usage     *stats.Store
}

// New bootstraps infrastructure and builds the application services.
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config provided")
	}

	boot, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	usage := stats.New(boot.DB)
	timeout := time.Duration(cfg.Sources.FetchTimeoutSeconds) * time.Second
	httpClient := netutil.NewClient(timeout, 2, time.Second)
	loc := tghelpers.LoadDisplayLocation(cfg.Sources.Timezone)

	a := &App{
		cfg:   cfg,
		usage: usage,
	}
	a.sportshub = newSportshubService(
		sportshub.New(sportshub.Config{
			BaseURL:     cfg.Sources.Sportshub.URL,
			EmbedMarker: cfg.Sources.Sportshub.EmbedMarker,
			Gateway:     cfg.Sources.StreamGateway,
			UserAgent:   cfg.Sources.UserAgent,
		}, httpClient),
		usage, timeout,
	)
	a.streamed = newStreamedService(
		streamed.New(streamed.Config{
			APIURL:    cfg.Sources.Streamed.APIURL,
			UserAgent: cfg.Sources.UserAgent,
		}, httpClient),
		usage, timeout, cfg.Sources.StreamGateway, loc,
	)
	return a, nil
}

// TelegramRunOptions assembles the registry, middleware chain, and routes
// for the bot runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Welcome and quick help",
	})
	reg.RegisterCommand("/sportshub", commands.Command{
		Handler:     a.sportshub.handleCommand,
		Description: "Browse the schedule listings",
		Aliases:     []string{"sh"},
	})
	reg.RegisterCommand("/streamed", commands.Command{
		Handler:     a.streamed.handleCommand,
		Description: "Browse matches by sport",
		Aliases:     []string{"st"},
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     a.handleStats,
		Description: "Usage summary",
		AdminOnly:   true,
		Hidden:      true,
	})

	if err := reg.RegisterCallback(cbSportshub, a.sportshub.handleCallback); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(cbStreamed, a.streamed.handleCallback); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(cbNoop, handleNoop); err != nil {
		return coretelegram.RunOptions{}, err
	}

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{
		UnknownText: handleUnknownText,
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
	}, nil
}

// handleNoop answers the inert page-indicator button.
func handleNoop(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: "Current page number"})
}

func handleUnknownText(c tele.Context) error {
	return tghelpers.SendText(c, "Try /sportshub or /streamed to browse live matches.")
}
