// FILE: internal/dto/usage_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookmarkRequest struct {
	QuestionId uuid.UUID `json:"question_id" validate:"required"`
}

type BookmarkResponse struct {
	Id         uuid.UUID `json:"id"`
	QuestionId uuid.UUID `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type RecordDownloadRequest struct {
	PaperId uuid.UUID `json:"paper_id" validate:"required"`
}

type DownloadResponse struct {
	Id        uuid.UUID `json:"id"`
	PaperId   uuid.UUID `json:"paper_id"`
	CreatedAt time.Time `json:"created_at"`
}

type QuotaUsageResponse struct {
	Key       string     `json:"key"`
	Used      int        `json:"used"`
	Limit     int        `json:"limit"` // -1 = unlimited
	Unlimited bool       `json:"unlimited"`
	ResetDate *time.Time `json:"reset_date,omitempty"`
}

type UsageOverviewResponse struct {
	PlanName string               `json:"plan_name,omitempty"`
	Quotas   []QuotaUsageResponse `json:"quotas"`
}
