// FILE: internal/entity/usage_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	QuestionId uuid.UUID
	CreatedAt  time.Time
}

type Download struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	PaperId   uuid.UUID
	CreatedAt time.Time
}

// QuotaUsage is the derived consumed-vs-limit view for one quota feature.
// Counters are computed per request, never stored.
type QuotaUsage struct {
	Key       string
	Used      int
	Limit     int // -1 = unlimited
	Unlimited bool
	ResetDate *time.Time // nil for lifetime quotas
}

// PeriodStart resolves the usage window start for a quota feature: the
// subscription start for lifetime quotas, otherwise the most recent
// daily/monthly boundary, never earlier than the subscription start.
func PeriodStart(period QuotaPeriod, subscriptionStart, now time.Time) time.Time {
	var boundary time.Time
	switch period {
	case QuotaPeriodDaily:
		boundary = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case QuotaPeriodMonthly:
		boundary = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return subscriptionStart
	}
	if boundary.Before(subscriptionStart) {
		return subscriptionStart
	}
	return boundary
}

// PeriodReset returns when the current usage window rolls over, or nil
// for lifetime quotas.
func PeriodReset(period QuotaPeriod, now time.Time) *time.Time {
	var reset time.Time
	switch period {
	case QuotaPeriodDaily:
		reset = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	case QuotaPeriodMonthly:
		reset = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	default:
		return nil
	}
	return &reset
}
