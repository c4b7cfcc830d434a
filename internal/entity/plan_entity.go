package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type QuotaPeriod string

const (
	QuotaPeriodDaily    QuotaPeriod = "daily"
	QuotaPeriodMonthly  QuotaPeriod = "monthly"
	QuotaPeriodLifetime QuotaPeriod = "lifetime"
)

// UnlimitedQuota marks a feature with no usage cap.
const UnlimitedQuota = -1

type Plan struct {
	Id            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Tagline       string
	IsActive      bool
	IsMostPopular bool
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	PricingOptions []PricingOption
	Features       []PlanFeature
}

// Option resolves a pricing option by its label, case-insensitive.
func (p *Plan) Option(label string) *PricingOption {
	for i := range p.PricingOptions {
		if strings.EqualFold(p.PricingOptions[i].Label, label) {
			return &p.PricingOptions[i]
		}
	}
	return nil
}

// QuotaFeature returns the quota feature with the given key, or nil.
func (p *Plan) QuotaFeature(key string) *PlanFeature {
	for i := range p.Features {
		f := &p.Features[i]
		if f.IsQuota && f.Key == key {
			return f
		}
	}
	return nil
}

type PricingOption struct {
	Id        uuid.UUID
	PlanId    uuid.UUID
	Label     string
	Price     float64
	Months    int // 0 = lifetime
	SortOrder int
}

// EndDate computes when a subscription started at `from` runs out.
// Lifetime options never expire and return nil.
func (o *PricingOption) EndDate(from time.Time) *time.Time {
	if o.Months <= 0 {
		return nil
	}
	end := from.AddDate(0, o.Months, 0)
	return &end
}

type PlanFeature struct {
	Id      uuid.UUID
	PlanId  uuid.UUID
	Text    string
	IsQuota bool
	Key     string
	Limit   int // -1 = unlimited
	Period  QuotaPeriod
}

func (f *PlanFeature) Unlimited() bool {
	return f.Limit == UnlimitedQuota
}
