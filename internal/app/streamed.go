package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
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
	"github.com/bipuldey19/sportsonline/internal/source/streamed"
	"github.com/bipuldey19/sportsonline/internal/stats"
)

const sportsPerRow = 3

// streamedService drives the API-backed flow: a sport picker, stateless
// paged match listings addressed by explicit page payloads, and stream
// menus aggregated across sources. Refs interned for this flow are
// "selector/matchID" composites so one registry serves every selector.
type streamedService struct {
	client  *streamed.Client
	ids     *listing.Registry
	tracker *listing.PageTracker
	usage   *stats.Store
	timeout time.Duration
	gateway string
	loc     *time.Location
}

func newStreamedService(client *streamed.Client, usage *stats.Store, timeout time.Duration, gateway string, loc *time.Location) *streamedService {
	return &streamedService{
		client:  client,
		ids:     listing.NewRegistry(),
		tracker: listing.NewPageTracker(),
		usage:   usage,
		timeout: timeout,
		gateway: gateway,
		loc:     loc,
	}
}

func (s *streamedService) handleCommand(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	s.usage.Record(ctx, c.Sender().ID, "streamed", stats.ActionCommand)
	return s.showRoot(c, false)
}

func (s *streamedService) handleCallback(c tele.Context) error {
	action, err := nav.Parse(callbacks.CallbackPayload(c))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}

	switch action.Verb {
	case nav.SelectCategory, nav.SelectFilter, nav.GotoPage:
		return s.showMatches(c, action.ID, action.Page)
	case nav.SelectItem:
		return s.showStreams(c, listing.ShortID(action.ID))
	case nav.GoHome:
		return s.showRoot(c, true)
	default:
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}
}

// showRoot renders the sport picker with the three cross-sport filters.
func (s *streamedService) showRoot(c tele.Context, edit bool) error {
	ctx, cancel := context.WithTimeout(tghelpers.BuildContext(c), s.timeout)
	defer cancel()

	sports, err := s.client.Sports(ctx)
	if err != nil {
		if edit {
			return c.Respond(&tele.CallbackResponse{Text: "Sorry, something went wrong."})
		}
		return tghelpers.SendText(c, "Sorry, something went wrong. Please try again.")
	}

	buttons := make([]keyboard.InlineBtn, 0, len(sports))
	for _, sport := range sports {
		payload, err := (nav.Action{Verb: nav.SelectCategory, ID: sport.ID, Page: 1}).Encode()
		if err != nil {
			continue
		}
		buttons = append(buttons, keyboard.InlineBtn{Text: sport.Name, Unique: cbStreamed, Data: payload})
	}
	rows := keyboard.ChunkInline(buttons, sportsPerRow)

	filters := []struct {
		label    string
		selector string
	}{
		{"All Matches", streamed.SelectorAll},
		{"Today's Matches", streamed.SelectorToday},
		{"🔴 Live Matches", streamed.SelectorLive},
	}
	for _, f := range filters {
		payload, err := (nav.Action{Verb: nav.SelectFilter, ID: f.selector, Page: 1}).Encode()
		if err != nil {
			return err
		}
		rows = append(rows, []keyboard.InlineBtn{{Text: f.label, Unique: cbStreamed, Data: payload}})
	}

	markup := keyboard.InlineButtonsRows(rows...)
	if edit {
		return tghelpers.EditMD(c, "Choose an option:", markup)
	}
	return tghelpers.SendMD(c, "Choose an option:", markup)
}

// showMatches renders one page of a selector's popular matches. Pages are
// addressed explicitly in the payload; the tracker mirrors the committed
// page so the back control can return to it.
func (s *streamedService) showMatches(c tele.Context, selector string, page int) error {
	ctx, cancel := context.WithTimeout(tghelpers.BuildContext(c), s.timeout)
	defer cancel()

	matches, err := s.client.Matches(ctx, selector)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Sorry, something went wrong."})
	}

	entries := make([]listing.RawEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, listing.RawEntry{
			Title: m.Title,
			Ref:   selector + "/" + m.ID,
			Live:  selector == streamed.SelectorLive,
		})
	}
	set := listing.SingleSection(selectorTitle(selector), entries)
	if set.Empty() {
		return c.Respond(&tele.CallbackResponse{
			Text:      "No matches available right now.",
			ShowAlert: true,
		})
	}

	view, err := listing.ResolvePage(set, page-1)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Page out of range"})
	}
	s.tracker.Set(c.Sender().ID, page-1)
	s.usage.Record(ctx, c.Sender().ID, "streamed", stats.ActionBrowse)
	logger.SVCListings.Debug("page resolved",
		"source", "streamed",
		"section", selector,
		"page", page-1,
		"matches", len(view.Items),
	)

	text, rows, err := menu.Render(view, s.ids, menu.Controls{
		Key:        cbStreamed,
		Title:      selectorTitle(selector),
		Prev:       nav.Action{Verb: nav.GotoPage, ID: selector, Page: page - 1},
		Next:       nav.Action{Verb: nav.GotoPage, ID: selector, Page: page + 1},
		Home:       nav.Action{Verb: nav.GoHome},
		AlwaysHome: true,
	})
	if err != nil {
		return err
	}
	return tghelpers.EditMD(c, text, keyboard.InlineButtonsRows(rows...))
}

// showStreams aggregates every source's streams for one match into a
// link menu.
func (s *streamedService) showStreams(c tele.Context, id listing.ShortID) error {
	ref, ok := s.ids.Resolve(id)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Sorry, match details not found."})
	}
	selector, matchID, ok := strings.Cut(string(ref), "/")
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Sorry, match details not found."})
	}

	ctx, cancel := context.WithTimeout(tghelpers.BuildContext(c), s.timeout)
	defer cancel()

	matches, err := s.client.Matches(ctx, selector)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Sorry, something went wrong."})
	}
	var match *streamed.Match
	for i := range matches {
		if matches[i].ID == matchID {
			match = &matches[i]
			break
		}
	}
	if match == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Match not found!"})
	}

	var rows [][]keyboard.InlineBtn
	for _, src := range match.Sources {
		streams, err := s.client.Streams(ctx, src.Source, src.ID)
		if err != nil {
			continue
		}
		for i, st := range streams {
			label := fmt.Sprintf("%s - %d", strings.ToUpper(src.Source), i+1)
			if st.Language != "" {
				label += " (" + st.Language + ")"
			}
			if st.HD {
				label += " | HD"
			}
			rows = append(rows, []keyboard.InlineBtn{{
				Text: label,
				URL:  s.gateway + "?stream=" + url.QueryEscape(st.EmbedURL),
			}})
		}
	}
	if len(rows) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "No available servers for this match!",
			ShowAlert: true,
		})
	}
	s.usage.Record(ctx, c.Sender().ID, "streamed", stats.ActionWatch)

	back, err := (nav.Action{
		Verb: nav.GotoPage,
		ID:   selector,
		Page: s.tracker.Get(c.Sender().ID) + 1,
	}).Encode()
	if err != nil {
		return err
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: menu.BackLabel, Unique: cbStreamed, Data: back}})

	title, _ := format.EscapeMarkdown(match.Title, format.MarkdownV1, "")
	text := "*" + title + "*\n📅 " + tghelpers.FormatKickoff(match.Date, s.loc)
	if match.Poster != "" {
		// Zero-width link pulls the poster in as the message preview.
		text += "[‍](" + s.client.PosterURL(match.Poster) + ")"
	}
	return tghelpers.EditMD(c, text, keyboard.InlineButtonsRows(rows...))
}

func selectorTitle(selector string) string {
	switch selector {
	case streamed.SelectorAll:
		return "All Popular Matches:"
	case streamed.SelectorToday:
		return "Today's Matches:"
	case streamed.SelectorLive:
		return "🔴 Live Matches:"
	default:
		return "Popular " + selector + " matches:"
	}
}
