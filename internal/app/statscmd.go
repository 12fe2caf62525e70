package app

import (
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/bipuldey19/sportsonline/core/telegram/helpers"
)

const statsWindow = 7 * 24 * time.Hour

// handleStats reports a usage summary over the trailing week. Admin only.
func (a *App) handleStats(c tele.Context) error {
	if a.usage == nil {
		return tghelpers.SendText(c, "Stats are disabled: no database configured.")
	}

	ctx := tghelpers.BuildContext(c)
	sum, err := a.usage.UsageSince(ctx, time.Now().Add(-statsWindow))
	if err != nil {
		return tghelpers.SendText(c, "Failed to load usage stats.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Usage since %s*\n", sum.Since.Format("Jan 2"))
	fmt.Fprintf(&b, "Total events: %d\n", sum.Total)
	for _, row := range sum.BySources {
		fmt.Fprintf(&b, "• %s: %d events, %d users\n", row.Source, row.Events, row.Users)
	}
	return tghelpers.SendMD(c, b.String())
}
