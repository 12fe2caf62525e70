// Package nav defines the callback payload grammar shared by all menus.
// Every button encodes one Action; handlers decode it and dispatch over
// the closed verb set, so no ad hoc string matching survives outside this
// package.
package nav

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxPayloadLen bounds encoded payloads to Telegram's callback data limit.
const MaxPayloadLen = 64

// Verb enumerates every navigation action the bot understands.
type Verb uint8

const (
	Noop Verb = iota
	SelectItem
	SelectCategory
	SelectFilter
	GotoPage
	GoHome
	GoNext
	GoPrev
)

var verbTokens = map[Verb]string{
	Noop:           "noop",
	SelectItem:     "item",
	SelectCategory: "cat",
	SelectFilter:   "filter",
	GotoPage:       "page",
	GoHome:         "home",
	GoNext:         "next",
	GoPrev:         "prev",
}

var tokenVerbs = func() map[string]Verb {
	m := make(map[string]Verb, len(verbTokens))
	for v, tok := range verbTokens {
		m[tok] = v
	}
	return m
}()

// String returns the wire token of the verb.
func (v Verb) String() string {
	if tok, ok := verbTokens[v]; ok {
		return tok
	}
	return "unknown"
}

// Action is one decoded navigation request.
//
// ID carries the interned short id for SelectItem, and the category or
// filter selector for SelectCategory, SelectFilter and GotoPage. Page is
// the 1-based target page and is required for the selector verbs so that
// selectors containing underscores stay parseable.
type Action struct {
	Verb Verb
	ID   string
	Page int
}

func (a Action) needsID() bool {
	switch a.Verb {
	case SelectItem, SelectCategory, SelectFilter, GotoPage:
		return true
	}
	return false
}

func (a Action) needsPage() bool {
	switch a.Verb {
	case SelectCategory, SelectFilter, GotoPage:
		return true
	}
	return false
}

// Encode renders the action as an ASCII payload of at most MaxPayloadLen
// bytes: "<verb>", "<verb>_<id>" or "<verb>_<id>_<page>".
func (a Action) Encode() (string, error) {
	tok, ok := verbTokens[a.Verb]
	if !ok {
		return "", fmt.Errorf("nav: unknown verb %d", a.Verb)
	}
	if a.needsID() && a.ID == "" {
		return "", fmt.Errorf("nav: verb %s requires an id", tok)
	}
	if a.needsPage() && a.Page < 1 {
		return "", fmt.Errorf("nav: verb %s requires a page >= 1", tok)
	}

	payload := tok
	if a.needsID() {
		payload += "_" + a.ID
	}
	if a.needsPage() {
		payload += "_" + strconv.Itoa(a.Page)
	}

	if len(payload) > MaxPayloadLen {
		return "", fmt.Errorf("nav: payload %q exceeds %d bytes", payload, MaxPayloadLen)
	}
	for i := 0; i < len(payload); i++ {
		if payload[i] < 0x21 || payload[i] > 0x7e {
			return "", fmt.Errorf("nav: payload %q is not printable ASCII", payload)
		}
	}
	return payload, nil
}

// Parse decodes a payload produced by Encode. Malformed payloads return an
// error; callers degrade to the unsupported-action acknowledgment.
func Parse(payload string) (Action, error) {
	if payload == "" || len(payload) > MaxPayloadLen {
		return Action{}, fmt.Errorf("nav: bad payload length %d", len(payload))
	}

	tok := payload
	rest := ""
	if i := strings.IndexByte(payload, '_'); i >= 0 {
		tok, rest = payload[:i], payload[i+1:]
	}
	verb, ok := tokenVerbs[tok]
	if !ok {
		return Action{}, fmt.Errorf("nav: unknown verb %q", tok)
	}

	a := Action{Verb: verb}
	if !a.needsID() {
		if rest != "" {
			return Action{}, fmt.Errorf("nav: verb %s takes no arguments", tok)
		}
		return a, nil
	}

	if a.needsPage() {
		i := strings.LastIndexByte(rest, '_')
		if i < 0 {
			return Action{}, fmt.Errorf("nav: verb %s requires a page", tok)
		}
		page, err := strconv.Atoi(rest[i+1:])
		if err != nil || page < 1 {
			return Action{}, fmt.Errorf("nav: bad page %q", rest[i+1:])
		}
		a.Page = page
		rest = rest[:i]
	}
	if rest == "" {
		return Action{}, fmt.Errorf("nav: verb %s requires an id", tok)
	}
	a.ID = rest
	return a, nil
}
