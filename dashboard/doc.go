// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dashboard holds the verification state controller.

The Controller is the only owner of the verified list, the pending list, the
incident list, the active filter tokens and the report form state. Views get
copies through Snapshot and request changes through the operations below:

	c.Vote(3, models.DirectionUp, true)
	c.Verify(3)
	c.ReportIncidentAt(52.0, -106.5)
	c.SubmitIncident(dashboard.IncidentDraft{...})
	c.CancelReport()

Unknown ids on Vote and Verify are no-ops. An invalid vote direction is an
error. Nothing is persisted; state lives as long as the process.
*/
package dashboard
