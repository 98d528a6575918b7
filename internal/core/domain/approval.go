package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Decision is the outcome recorded by an approver.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Valid reports whether d is approved or rejected.
func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// ApprovalTrail is an append-only audit row of a decision on a campaign.
type ApprovalTrail struct {
	ID         int64
	CampaignID uuid.UUID
	ApproverID int64
	Decision   Decision
	Comment    string
	CreatedAt  time.Time
}

// Activity log events besides the decisions themselves.
const (
	EventCreated   = "created"
	EventSubmitted = "submitted"
)

// LogEntry is one line of a campaign activity log.
type LogEntry struct {
	At      time.Time
	Event   string
	ActorID int64
	Message string
}

// ActivityLog rebuilds the history of c from its own timestamps and its
// approval trail, newest first. Only the latest submission is known.
func ActivityLog(c *Campaign, trails []ApprovalTrail) []LogEntry {
	log := make([]LogEntry, 0, len(trails)+2)
	log = append(log, LogEntry{
		At:      c.CreatedAt,
		Event:   EventCreated,
		ActorID: c.OwnerID,
		Message: "Campaign created as draft.",
	})
	if c.SubmittedOn != nil {
		log = append(log, LogEntry{
			At:      *c.SubmittedOn,
			Event:   EventSubmitted,
			ActorID: c.OwnerID,
			Message: "Submitted for approval.",
		})
	}
	for _, t := range trails {
		msg := "Campaign " + string(t.Decision) + "."
		if t.Comment != "" {
			msg += " " + t.Comment
		}
		log = append(log, LogEntry{At: t.CreatedAt, Event: string(t.Decision), ActorID: t.ApproverID, Message: msg})
	}
	slices.SortStableFunc(log, func(a, b LogEntry) int { return b.At.Compare(a.At) })
	return log
}
