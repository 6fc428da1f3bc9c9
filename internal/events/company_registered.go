package events

import "time"

const (
	CompanyLifecycleTopic      = "hrm.company.lifecycle.v1"
	EventTypeCompanyRegistered = "company.registered"
)

// CompanyRegisteredEvent is emitted once per signup, inside the signup
// transaction.
type CompanyRegisteredEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	CompanyID   string    `json:"company_id"`
	Slug        string    `json:"slug"`
	AdminUserID string    `json:"admin_user_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
