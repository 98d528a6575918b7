package domain

import "time"

// Lifecycle actions, used in InvalidTransitionError.
const (
	ActionSubmit = "submit"
	ActionDecide = "decide"
	ActionUpdate = "update"
)

// Lifecycle drives Campaign.Status. Only draft -> pending_approval ->
// scheduled|draft is modelled here; running, paused, completed, failed and
// cancelled are set by other systems.
type Lifecycle struct {
	// RequirePending restricts decisions to campaigns awaiting approval.
	// When false a decision is accepted from any status.
	RequirePending bool
}

// Submit moves a draft campaign to pending_approval and stamps the
// submission time.
func (l Lifecycle) Submit(c *Campaign, now time.Time) error {
	if c.Status != StatusDraft {
		return &InvalidTransitionError{Action: ActionSubmit, From: c.Status}
	}
	c.Status = StatusPendingApproval
	c.SubmittedOn = &now
	return nil
}

// Decide applies an approval decision and returns the trail row that must
// be persisted together with the campaign.
func (l Lifecycle) Decide(c *Campaign, d Decision, approverID int64, comment string, now time.Time) (*ApprovalTrail, error) {
	if !d.Valid() {
		return nil, NewValidationError("decision", "Decision must be 'approved' or 'rejected'.")
	}
	if l.RequirePending && c.Status != StatusPendingApproval {
		return nil, &InvalidTransitionError{Action: ActionDecide, From: c.Status}
	}
	switch d {
	case DecisionApproved:
		c.Status = StatusScheduled
	case DecisionRejected:
		c.Status = StatusDraft
	}
	c.CurrentApproverID = nil
	return &ApprovalTrail{
		CampaignID: c.ID,
		ApproverID: approverID,
		Decision:   d,
		Comment:    comment,
		CreatedAt:  now,
	}, nil
}

// CanEdit reports whether campaign fields may still be changed.
func (l Lifecycle) CanEdit(c *Campaign) error {
	if c.Status != StatusDraft {
		return &InvalidTransitionError{Action: ActionUpdate, From: c.Status}
	}
	return nil
}
