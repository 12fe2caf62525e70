// Package menu turns resolved listing pages into Telegram inline keyboards.
package menu

import (
	"fmt"

	"github.com/bipuldey19/sportsonline/core/telegram/keyboard"
	"github.com/bipuldey19/sportsonline/internal/listing"
	"github.com/bipuldey19/sportsonline/internal/nav"
)

// Button labels shared by every paginated menu.
const (
	PrevLabel = "⬅️ Previous"
	NextLabel = "Next ➡️"
	HomeLabel = "🏠 Home"
	BackLabel = "🔙 Back"
)

// NoopKey is the registry key of the inert page-indicator control.
const NoopKey = "noop"

// Interner mints short ids for item refs exposed as buttons.
type Interner interface {
	Intern(ref listing.ResourceRef) listing.ShortID
}

// Controls describes the navigation surface of one menu. Key is the
// callback registry key owning every action of the menu; Prev/Next/Home
// are included only when the view (or AlwaysHome) calls for them.
type Controls struct {
	Key        string
	Title      string
	Prev       nav.Action
	Next       nav.Action
	Home       nav.Action
	AlwaysHome bool
}

// ItemLabel decorates an item title with the live marker and score suffix.
func ItemLabel(it listing.Item) string {
	if !it.Live {
		return it.Title
	}
	label := "🔴 " + it.Title
	if it.Score != "" {
		label += " (" + it.Score + ")"
	}
	return label
}

// Render produces the message text and button grid for a resolved page.
// Item buttons carry interned short ids; the navigation row holds the
// previous control, a "page/total" indicator, and the next control, each
// present only when applicable.
func Render(view listing.PageView, ids Interner, ctl Controls) (string, [][]keyboard.InlineBtn, error) {
	text := ctl.Title
	if text == "" {
		if view.Featured {
			text = fmt.Sprintf("🔝 *%s:*", view.SectionLabel)
		} else {
			text = fmt.Sprintf("📅 *%s:*", view.SectionLabel)
		}
	}

	items := make([]keyboard.InlineBtn, 0, len(view.Items))
	for _, it := range view.Items {
		payload, err := nav.Action{Verb: nav.SelectItem, ID: string(ids.Intern(it.Ref))}.Encode()
		if err != nil {
			return "", nil, fmt.Errorf("menu: item payload: %w", err)
		}
		items = append(items, keyboard.InlineBtn{
			Text:   ItemLabel(it),
			Unique: ctl.Key,
			Data:   payload,
		})
	}
	rows := keyboard.ChunkInline(items, view.Columns)

	if view.TotalPages > 1 {
		navRow, err := navigationRow(view, ctl)
		if err != nil {
			return "", nil, err
		}
		rows = append(rows, navRow)
	}

	if view.HasPrev || ctl.AlwaysHome {
		payload, err := ctl.Home.Encode()
		if err != nil {
			return "", nil, fmt.Errorf("menu: home payload: %w", err)
		}
		rows = append(rows, []keyboard.InlineBtn{{Text: HomeLabel, Unique: ctl.Key, Data: payload}})
	}

	return text, rows, nil
}

func navigationRow(view listing.PageView, ctl Controls) ([]keyboard.InlineBtn, error) {
	var row []keyboard.InlineBtn
	if view.HasPrev {
		payload, err := ctl.Prev.Encode()
		if err != nil {
			return nil, fmt.Errorf("menu: prev payload: %w", err)
		}
		row = append(row, keyboard.InlineBtn{Text: PrevLabel, Unique: ctl.Key, Data: payload})
	}
	row = append(row, keyboard.InlineBtn{
		Text:   fmt.Sprintf("%d/%d", view.Page+1, view.TotalPages),
		Unique: NoopKey,
		Data:   "noop",
	})
	if view.HasNext {
		payload, err := ctl.Next.Encode()
		if err != nil {
			return nil, fmt.Errorf("menu: next payload: %w", err)
		}
		row = append(row, keyboard.InlineBtn{Text: NextLabel, Unique: ctl.Key, Data: payload})
	}
	return row, nil
}
