// FILE: internal/entity/payment_method_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethodKind string

const (
	PaymentMethodKindManual  PaymentMethodKind = "manual"  // bank transfer etc., admin approves
	PaymentMethodKindGateway PaymentMethodKind = "gateway" // settled by the payment gateway webhook
)

type PaymentMethod struct {
	Id           uuid.UUID
	Name         string
	Code         string
	Kind         PaymentMethodKind
	Enabled      bool
	Instructions string
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
