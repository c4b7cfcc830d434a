package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

type Discount struct {
	Id          uuid.UUID
	Code        string
	Type        DiscountType
	Value       float64
	PlanId      *uuid.UUID // nil = any plan
	OptionLabel *string    // nil = any pricing option
	IsActive    bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

// Redeemable reports whether the code can be applied at the given time.
func (d *Discount) Redeemable(now time.Time) bool {
	if !d.IsActive {
		return false
	}
	if d.ExpiresAt != nil && now.After(*d.ExpiresAt) {
		return false
	}
	return true
}

// AppliesTo checks the plan/option restrictions. A nil restriction
// matches everything.
func (d *Discount) AppliesTo(planId uuid.UUID, optionLabel string) bool {
	if d.PlanId != nil && *d.PlanId != planId {
		return false
	}
	if d.OptionLabel != nil && !strings.EqualFold(*d.OptionLabel, optionLabel) {
		return false
	}
	return true
}

// AmountFor computes the discount against a price. The result never
// exceeds the price, so the payable amount stays non-negative.
func (d *Discount) AmountFor(price float64) float64 {
	var amount float64
	switch d.Type {
	case DiscountTypePercentage:
		amount = price * d.Value / 100
	case DiscountTypeFlat:
		amount = d.Value
	}
	if amount < 0 {
		return 0
	}
	if amount > price {
		return price
	}
	return amount
}
