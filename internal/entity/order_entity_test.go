package entity

import "testing"

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{name: "pending to completed", from: OrderStatusPending, to: OrderStatusCompleted, expected: true},
		{name: "pending to failed", from: OrderStatusPending, to: OrderStatusFailed, expected: true},
		{name: "pending to refunded", from: OrderStatusPending, to: OrderStatusRefunded, expected: true},
		{name: "pending to pending", from: OrderStatusPending, to: OrderStatusPending, expected: false},
		{name: "completed to failed", from: OrderStatusCompleted, to: OrderStatusFailed, expected: false},
		{name: "completed to refunded", from: OrderStatusCompleted, to: OrderStatusRefunded, expected: false},
		{name: "failed to completed", from: OrderStatusFailed, to: OrderStatusCompleted, expected: false},
		{name: "refunded to pending", from: OrderStatusRefunded, to: OrderStatusPending, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expected {
				t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if OrderStatusPending.Terminal() {
		t.Error("pending should not be terminal")
	}
	for _, s := range []OrderStatus{OrderStatusCompleted, OrderStatusFailed, OrderStatusRefunded} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}
