// FILE: internal/dto/plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Public catalog DTOs ---

type PlanResponse struct {
	Id             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Slug           string                  `json:"slug"`
	Description    string                  `json:"description"`
	Tagline        string                  `json:"tagline,omitempty"`
	IsMostPopular  bool                    `json:"is_most_popular"`
	PricingOptions []PricingOptionResponse `json:"pricing_options"`
	Features       []PlanFeatureResponse   `json:"features"`
}

type PricingOptionResponse struct {
	Id     uuid.UUID `json:"id"`
	Label  string    `json:"label"`
	Price  float64   `json:"price"`
	Months int       `json:"months"` // 0 = lifetime
}

type PlanFeatureResponse struct {
	Text    string `json:"text"`
	IsQuota bool   `json:"is_quota"`
	Key     string `json:"key,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Period  string `json:"period,omitempty"`
}

// --- Admin plan management DTOs ---

type CreatePlanRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Slug          string `json:"slug" validate:"required,min=2"`
	Description   string `json:"description"`
	Tagline       string `json:"tagline"`
	IsActive      bool   `json:"is_active"`
	IsMostPopular bool   `json:"is_most_popular"`
	SortOrder     int    `json:"sort_order"`
}

type UpdatePlanRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Description   string `json:"description"`
	Tagline       string `json:"tagline"`
	IsActive      bool   `json:"is_active"`
	IsMostPopular bool   `json:"is_most_popular"`
	SortOrder     int    `json:"sort_order"`
}

type CreatePricingOptionRequest struct {
	Label     string  `json:"label" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Months    int     `json:"months" validate:"gte=0"`
	SortOrder int     `json:"sort_order"`
}

type CreatePlanFeatureRequest struct {
	Text    string `json:"text" validate:"required"`
	IsQuota bool   `json:"is_quota"`
	Key     string `json:"key" validate:"required_if=IsQuota true"`
	Limit   int    `json:"limit" validate:"gte=-1"`
	Period  string `json:"period" validate:"omitempty,oneof=daily monthly lifetime"`
}

type AdminPlanResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Tagline       string    `json:"tagline"`
	IsActive      bool      `json:"is_active"`
	IsMostPopular bool      `json:"is_most_popular"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`

	PricingOptions []PricingOptionResponse `json:"pricing_options"`
	Features       []PlanFeatureResponse   `json:"features"`
}
