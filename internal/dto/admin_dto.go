// FILE: internal/dto/admin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Dashboard DTOs ---

type DashboardStatsResponse struct {
	TotalUsers      int64   `json:"total_users"`
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	OpenTickets     int64   `json:"open_tickets"`
	TotalQuestions  int64   `json:"total_questions"`
	TotalPapers     int64   `json:"total_papers"`
}

// --- User management DTOs ---

type AdminUserResponse struct {
	Id             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	PlanId         *uuid.UUID `json:"plan_id,omitempty"`
	PlanExpiryDate *time.Time `json:"plan_expiry_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active blocked"`
}

type AdminChangePlanRequest struct {
	PlanId      uuid.UUID  `json:"plan_id" validate:"required"`
	OptionLabel string     `json:"option_label" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Remarks     string     `json:"remarks"`
}

// --- Log DTOs ---

type LogQueryRequest struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type PaginatedResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
