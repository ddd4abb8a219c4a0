// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reportform is the boundary between the incident report form and the
dashboard controller.

	form, err := reportform.Parse(w, r, cfg.MaxUploadBytes())
	incident, err := reportform.Submit(ctx, form, ctrl, store)

A missing description or category yields a *ValidationError with
MissingFieldsMessage and changes nothing. When the form carries no
coordinates the incident is placed at the form anchor set by a map click, or
at the map's default center when the form was opened without one.
*/
package reportform
