package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserPlanStatus string

const (
	UserPlanStatusCurrent   UserPlanStatus = "current"
	UserPlanStatusExpired   UserPlanStatus = "expired"
	UserPlanStatusCancelled UserPlanStatus = "cancelled"
)

// UserPlan is one row of a user's subscription history. At most one row
// per user carries the current status.
type UserPlan struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	PlanId           uuid.UUID
	PlanName         string
	SubscriptionDate time.Time
	EndDate          *time.Time // nil = lifetime
	Status           UserPlanStatus
	Remarks          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Lapsed reports whether a bounded subscription has run past its end.
func (p *UserPlan) Lapsed(now time.Time) bool {
	return p.EndDate != nil && now.After(*p.EndDate)
}
