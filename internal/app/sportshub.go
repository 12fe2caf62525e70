package app

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/bipuldey19/sportsonline/core/logger"
	"github.com/bipuldey19/sportsonline/core/telegram/callbacks"
	"github.com/bipuldey19/sportsonline/core/telegram/format"
	tghelpers "github.com/bipuldey19/sportsonline/core/telegram/helpers"
	"github.com/bipuldey19/sportsonline/core/telegram/keyboard"
	"github.com/bipuldey19/sportsonline/internal/listing"
	"github.com/bipuldey19/sportsonline/internal/menu"
	"github.com/bipuldey19/sportsonline/internal/nav"
	"github.com/bipuldey19/sportsonline/internal/source/sportshub"
	"github.com/bipuldey19/sportsonline/internal/stats"
)

// sportshubService drives the scraped schedule flow: a stateful paged
// listing (the user's page lives in the tracker) and per-match server
// menus.
type sportshubService struct {
	client  *sportshub.Client
	ids     *listing.Registry
	tracker *listing.PageTracker
	usage   *stats.Store
	timeout time.Duration
}

func newSportshubService(client *sportshub.Client, usage *stats.Store, timeout time.Duration) *sportshubService {
	return &sportshubService{
		client:  client,
		ids:     listing.NewRegistry(),
		tracker: listing.NewPageTracker(),
		usage:   usage,
		timeout: timeout,
	}
}

func (s *sportshubService) handleCommand(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	s.usage.Record(ctx, c.Sender().ID, "sportshub", stats.ActionCommand)
	return s.showPage(c, 0, false)
}

func (s *sportshubService) handleCallback(c tele.Context) error {
	action, err := nav.Parse(callbacks.CallbackPayload(c))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}

	userID := c.Sender().ID
	switch action.Verb {
	case nav.SelectItem:
		return s.showDetail(c, listing.ShortID(action.ID))
	case nav.GoNext:
		return s.showPage(c, s.tracker.Get(userID)+1, true)
	case nav.GoPrev:
		target := s.tracker.Get(userID) - 1
		if target < 0 {
			target = 0
		}
		return s.showPage(c, target, true)
	case nav.GoHome:
		return s.showPage(c, 0, true)
	default:
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}
}

// showPage fetches the current listings and renders the target logical
// page. The tracker is committed only after the page resolves, so an
// out-of-range request leaves the user's position untouched.
func (s *sportshubService) showPage(c tele.Context, target int, edit bool) error {
	ctx, cancel := context.WithTimeout(tghelpers.BuildContext(c), s.timeout)
	defer cancel()

	raw, err := s.client.Listings(ctx)
	if err != nil {
		return s.fail(c, edit, "Sorry, something went wrong. Please try again.")
	}
	set := listing.Group(raw, true)
	if set.Empty() {
		return s.fail(c, edit, "No matches found on Sportshub.")
	}

	view, err := listing.ResolvePage(set, target)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Page out of range"})
	}
	s.tracker.Set(c.Sender().ID, target)
	s.usage.Record(ctx, c.Sender().ID, "sportshub", stats.ActionBrowse)
	logger.SVCListings.Debug("page resolved",
		"source", "sportshub",
		"page", target,
		"sections", len(set.Sections),
		"matches", len(view.Items),
	)

	text, rows, err := menu.Render(view, s.ids, menu.Controls{
		Key:  cbSportshub,
		Prev: nav.Action{Verb: nav.GoPrev},
		Next: nav.Action{Verb: nav.GoNext},
		Home: nav.Action{Verb: nav.GoHome},
	})
	if err != nil {
		return err
	}

	markup := keyboard.InlineButtonsRows(rows...)
	if edit {
		return tghelpers.EditMD(c, text, markup)
	}
	return tghelpers.SendMD(c, text, markup)
}

// showDetail renders the server menu for one interned match.
func (s *sportshubService) showDetail(c tele.Context, id listing.ShortID) error {
	ref, ok := s.ids.Resolve(id)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Sorry, match details not found."})
	}

	ctx, cancel := context.WithTimeout(tghelpers.BuildContext(c), s.timeout)
	defer cancel()

	detail, err := s.client.Detail(ctx, ref)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Sorry, something went wrong. Please try again."})
	}
	if len(detail.Servers) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "No available servers found for this match."})
	}
	s.usage.Record(ctx, c.Sender().ID, "sportshub", stats.ActionWatch)

	buttons := make([]keyboard.InlineBtn, 0, len(detail.Servers))
	for _, srv := range detail.Servers {
		buttons = append(buttons, keyboard.InlineBtn{Text: srv.Label, URL: srv.URL})
	}
	rows := keyboard.ChunkInline(buttons, 2)

	back, err := (nav.Action{Verb: nav.GoHome}).Encode()
	if err != nil {
		return err
	}
	rows = append(rows, []keyboard.InlineBtn{
		{Text: menu.BackLabel, Unique: cbSportshub, Data: back},
	})

	title, _ := format.EscapeMarkdown(detail.Title, format.MarkdownV1, "")
	return tghelpers.EditMD(c, "Available servers for *"+title+"*:", keyboard.InlineButtonsRows(rows...))
}

func (s *sportshubService) fail(c tele.Context, edit bool, text string) error {
	if edit {
		return c.Respond(&tele.CallbackResponse{Text: text})
	}
	return tghelpers.SendText(c, text)
}
