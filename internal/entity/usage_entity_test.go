package entity

import (
	"testing"
	"time"
)

func TestPeriodStart(t *testing.T) {
	subStart := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	now := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   QuotaPeriod
		now      time.Time
		expected time.Time
	}{
		{
			name:     "daily uses midnight",
			period:   QuotaPeriodDaily,
			now:      now,
			expected: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monthly uses first of month but not before subscription",
			period:   QuotaPeriodMonthly,
			now:      now,
			expected: subStart,
		},
		{
			name:     "monthly after subscription month",
			period:   QuotaPeriodMonthly,
			now:      time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "lifetime uses subscription start",
			period:   QuotaPeriodLifetime,
			now:      now,
			expected: subStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodStart(tt.period, subStart, tt.now); !got.Equal(tt.expected) {
				t.Errorf("PeriodStart(%s) = %v, want %v", tt.period, got, tt.expected)
			}
		})
	}
}

func TestPeriodReset(t *testing.T) {
	now := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)

	daily := PeriodReset(QuotaPeriodDaily, now)
	if daily == nil || !daily.Equal(time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("daily reset = %v", daily)
	}

	monthly := PeriodReset(QuotaPeriodMonthly, now)
	if monthly == nil || !monthly.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monthly reset = %v", monthly)
	}

	if reset := PeriodReset(QuotaPeriodLifetime, now); reset != nil {
		t.Errorf("lifetime reset = %v, want nil", reset)
	}
}
