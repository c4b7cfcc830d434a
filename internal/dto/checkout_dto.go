// FILE: internal/dto/checkout_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Discount DTOs ---

type ValidateDiscountRequest struct {
	Code        string    `json:"code" validate:"required"`
	PlanId      uuid.UUID `json:"plan_id" validate:"required"`
	OptionLabel string    `json:"option_label" validate:"required"`
}

type ValidateDiscountResponse struct {
	Valid          bool    `json:"valid"`
	Code           string  `json:"code,omitempty"`
	Type           string  `json:"type,omitempty"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	Message        string  `json:"message,omitempty"`
}

// --- Checkout DTOs ---

type OrderSummaryRequest struct {
	PlanId       uuid.UUID `json:"plan_id" validate:"required"`
	OptionLabel  string    `json:"option_label" validate:"required"`
	DiscountCode string    `json:"discount_code"`
}

type OrderSummaryResponse struct {
	PlanName       string  `json:"plan_name"`
	OptionLabel    string  `json:"option_label"`
	OriginalPrice  float64 `json:"original_price"`
	DiscountCode   string  `json:"discount_code,omitempty"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

type CheckoutRequest struct {
	PlanId        uuid.UUID `json:"plan_id" validate:"required"`
	OptionLabel   string    `json:"option_label" validate:"required"`
	DiscountCode  string    `json:"discount_code"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
}

type CheckoutResponse struct {
	OrderId         uuid.UUID `json:"order_id"`
	Status          string    `json:"status"`
	FinalAmount     float64   `json:"final_amount"`
	Instructions    string    `json:"instructions,omitempty"`
	SnapToken       string    `json:"snap_token,omitempty"`
	SnapRedirectUrl string    `json:"snap_redirect_url,omitempty"`
}

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	TransactionId     string `json:"transaction_id"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

// --- Order DTOs ---

type OrderResponse struct {
	Id                 uuid.UUID `json:"id"`
	UserId             uuid.UUID `json:"user_id"`
	PlanId             uuid.UUID `json:"plan_id"`
	PlanName           string    `json:"plan_name,omitempty"`
	PricingOptionLabel string    `json:"pricing_option_label"`
	OriginalPrice      float64   `json:"original_price"`
	DiscountCode       *string   `json:"discount_code,omitempty"`
	DiscountAmount     float64   `json:"discount_amount"`
	FinalAmount        float64   `json:"final_amount"`
	PaymentMethod      string    `json:"payment_method"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type ProcessOrderRequest struct {
	Action  string `json:"action" validate:"required,oneof=complete fail refund"`
	Remarks string `json:"remarks"`
}

type SubscriptionStatusResponse struct {
	HasPlan    bool       `json:"has_plan"`
	PlanId     *uuid.UUID `json:"plan_id,omitempty"`
	PlanName   string     `json:"plan_name,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"` // nil = lifetime
}

type PlanHistoryResponse struct {
	Id               uuid.UUID  `json:"id"`
	PlanId           uuid.UUID  `json:"plan_id"`
	PlanName         string     `json:"plan_name"`
	SubscriptionDate time.Time  `json:"subscription_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Status           string     `json:"status"`
	Remarks          string     `json:"remarks,omitempty"`
}

// --- Payment method DTOs ---

type PaymentMethodResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Kind         string    `json:"kind"`
	Instructions string    `json:"instructions,omitempty"`
}

type UpsertPaymentMethodRequest struct {
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required"`
	Kind         string `json:"kind" validate:"required,oneof=manual gateway"`
	Enabled      bool   `json:"enabled"`
	Instructions string `json:"instructions"`
	SortOrder    int    `json:"sort_order"`
}

// --- Admin discount DTOs ---

type UpsertDiscountRequest struct {
	Code        string     `json:"code" validate:"required,min=2"`
	Type        string     `json:"type" validate:"required,oneof=percentage flat"`
	Value       float64    `json:"value" validate:"gt=0"`
	PlanId      *uuid.UUID `json:"plan_id"`
	OptionLabel *string    `json:"option_label"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type DiscountResponse struct {
	Id          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Type        string     `json:"type"`
	Value       float64    `json:"value"`
	PlanId      *uuid.UUID `json:"plan_id,omitempty"`
	OptionLabel *string    `json:"option_label,omitempty"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
