// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/middleware"
	"github.com/danielhkuo/disaster-verify/models"
	"github.com/danielhkuo/disaster-verify/views"
)

type VerificationHandler struct {
	ctrl     *dashboard.Controller
	renderer *mapview.Renderer
}

func NewVerificationHandler(ctrl *dashboard.Controller, renderer *mapview.Renderer) *VerificationHandler {
	return &VerificationHandler{ctrl: ctrl, renderer: renderer}
}

func itemID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, errors.New("item id must be an integer")
	}
	return id, nil
}

// Vote handles POST /api/items/{id}/votes
// An unknown id is not an error; the unchanged state is returned.
func (h *VerificationHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.VoteRequest
	if middleware.IsFormPost(r) {
		req.Direction = r.FormValue("direction")
		if p := r.FormValue("pending"); p != "" {
			pending, err := strconv.ParseBool(p)
			if err != nil {
				middleware.ErrorResponse(w, http.StatusBadRequest, "pending must be true or false")
				return
			}
			req.Pending = &pending
		}
	} else if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	dir, err := models.ParseDirection(req.Direction)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	// votes come from the pending list unless the caller says otherwise
	fromPending := true
	if req.Pending != nil {
		fromPending = *req.Pending
	}

	if err := h.ctrl.Vote(id, dir, fromPending); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	middleware.Respond(w, r, http.StatusOK, views.Build(h.ctrl.Snapshot(), h.renderer))
}

// Verify handles POST /api/items/{id}/verify
func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.ctrl.Verify(id)
	middleware.Respond(w, r, http.StatusOK, views.Build(h.ctrl.Snapshot(), h.renderer))
}
