package app

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/bipuldey19/sportsonline/core/telegram/helpers"
	"github.com/bipuldey19/sportsonline/internal/stats"
)

const welcomeAnimationURL = "https://assets.bwbx.io/images/users/iqjWHBFdfxIU/iXqPwMMQW6Jg/v0/-999x-999.gif"

const welcomeCaption = `🎉 *Welcome to the Live Streaming Bot* 🎉

I'm here to help you catch all the *LIVE sports events* from around the world. ⚽🏀🎾

📅 *What you can do:*
- See today's live matches 🕒
- Get live streams for your favorite games 🔴
- Choose from multiple server options for the best viewing experience 🖥️

Just type /sportshub or /streamed or use the *Menu* button to get started and enjoy your game! 🏅

⚠️ *Disclaimer:* This bot does not host any streams. All streams are external links. Use at your own discretion.

💬 *Important:* It may take a moment to show the results. Please be patient.

Let's get ready for some action! 🎬`

func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	a.usage.Record(ctx, c.Sender().ID, "bot", stats.ActionCommand)

	anim := &tele.Animation{
		File:    tele.FromURL(welcomeAnimationURL),
		Caption: welcomeCaption,
	}
	return c.Send(anim, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
}
