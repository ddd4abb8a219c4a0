// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"strconv"

	"github.com/danielhkuo/disaster-verify/models"
)

// Action names
const (
	ActionVoteUp   = "vote-up"
	ActionVoteDown = "vote-down"
	ActionVerify   = "verify"
)

// Action is a request the browser sends when a button is pressed
type Action struct {
	Name   string            `json:"name"`
	Method string            `json:"method"`
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields,omitempty"`
}

type ItemView struct {
	ID        int      `json:"id"`
	Text      string   `json:"text"`
	Upvotes   int      `json:"upvotes"`
	Downvotes int      `json:"downvotes"`
	Actions   []Action `json:"actions"`
}

type ListView struct {
	Pending bool       `json:"pending"`
	Items   []ItemView `json:"items"`
}

// RenderList renders items in their stored order. Only pending lists get
// vote and verify actions; verified items are read-only.
func RenderList(items []models.InformationItem, pending bool) ListView {
	lv := ListView{Pending: pending, Items: make([]ItemView, 0, len(items))}
	for _, it := range items {
		iv := ItemView{
			ID:        it.ID,
			Text:      it.Text,
			Upvotes:   it.Upvotes,
			Downvotes: it.Downvotes,
			Actions:   []Action{},
		}
		if pending {
			base := "/api/items/" + strconv.Itoa(it.ID)
			iv.Actions = []Action{
				{Name: ActionVoteUp, Method: "POST", URL: base + "/votes", Fields: map[string]string{"direction": "up", "pending": "true"}},
				{Name: ActionVoteDown, Method: "POST", URL: base + "/votes", Fields: map[string]string{"direction": "down", "pending": "true"}},
				{Name: ActionVerify, Method: "POST", URL: base + "/verify"},
			}
		}
		lv.Items = append(lv.Items, iv)
	}
	return lv
}
