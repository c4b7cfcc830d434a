package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDiscountAmountFor(t *testing.T) {
	tests := []struct {
		name     string
		dType    DiscountType
		value    float64
		price    float64
		expected float64
	}{
		{name: "percentage", dType: DiscountTypePercentage, value: 10, price: 200, expected: 20},
		{name: "percentage full", dType: DiscountTypePercentage, value: 100, price: 150, expected: 150},
		{name: "flat", dType: DiscountTypeFlat, value: 50, price: 200, expected: 50},
		{name: "flat exceeds price clamps", dType: DiscountTypeFlat, value: 500, price: 200, expected: 200},
		{name: "percentage over 100 clamps", dType: DiscountTypePercentage, value: 150, price: 100, expected: 100},
		{name: "negative value clamps to zero", dType: DiscountTypeFlat, value: -10, price: 100, expected: 0},
		{name: "zero price", dType: DiscountTypePercentage, value: 50, price: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Discount{Type: tt.dType, Value: tt.value}
			if got := d.AmountFor(tt.price); got != tt.expected {
				t.Errorf("AmountFor(%v) = %v, want %v", tt.price, got, tt.expected)
			}
		})
	}
}

func TestDiscountRedeemable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		discount Discount
		expected bool
	}{
		{name: "active no expiry", discount: Discount{IsActive: true}, expected: true},
		{name: "inactive", discount: Discount{IsActive: false}, expected: false},
		{name: "active not yet expired", discount: Discount{IsActive: true, ExpiresAt: &future}, expected: true},
		{name: "active but expired", discount: Discount{IsActive: true, ExpiresAt: &past}, expected: false},
		{name: "inactive and expired", discount: Discount{IsActive: false, ExpiresAt: &past}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.discount.Redeemable(now); got != tt.expected {
				t.Errorf("Redeemable() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDiscountAppliesTo(t *testing.T) {
	planA := uuid.New()
	planB := uuid.New()
	monthly := "Monthly"

	tests := []struct {
		name        string
		discount    Discount
		planId      uuid.UUID
		optionLabel string
		expected    bool
	}{
		{name: "no restrictions", discount: Discount{}, planId: planA, optionLabel: "Monthly", expected: true},
		{name: "plan restricted match", discount: Discount{PlanId: &planA}, planId: planA, optionLabel: "Yearly", expected: true},
		{name: "plan restricted mismatch", discount: Discount{PlanId: &planA}, planId: planB, optionLabel: "Monthly", expected: false},
		{name: "option restricted match", discount: Discount{OptionLabel: &monthly}, planId: planB, optionLabel: "monthly", expected: true},
		{name: "option restricted mismatch", discount: Discount{OptionLabel: &monthly}, planId: planA, optionLabel: "Yearly", expected: false},
		{name: "both restricted both match", discount: Discount{PlanId: &planA, OptionLabel: &monthly}, planId: planA, optionLabel: "MONTHLY", expected: true},
		{name: "both restricted plan mismatch", discount: Discount{PlanId: &planA, OptionLabel: &monthly}, planId: planB, optionLabel: "Monthly", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.discount.AppliesTo(tt.planId, tt.optionLabel); got != tt.expected {
				t.Errorf("AppliesTo() = %v, want %v", got, tt.expected)
			}
		})
	}
}
