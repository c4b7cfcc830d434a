package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusRefunded  OrderStatus = "refunded"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed || s == OrderStatusRefunded
}

// CanTransitionTo enforces the order state machine: only pending orders
// move, and only into a terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderStatusPending && next.Terminal()
}

type Order struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	PlanId             uuid.UUID
	PricingOptionLabel string
	OriginalPrice      float64
	DiscountCode       *string
	DiscountAmount     float64
	FinalAmount        float64
	PaymentMethod      string
	Status             OrderStatus
	GatewayReference   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
