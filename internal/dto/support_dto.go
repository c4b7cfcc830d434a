// FILE: internal/dto/support_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// Ticket topics. Each topic is a request variant with its own schema.
const (
	TopicGeneral   = "general"
	TopicBilling   = "billing"
	TopicTechnical = "technical"
)

// CreateSubmissionRequest is a tagged union discriminated on Topic.
// The shared fields validate here; the topic-specific fields validate
// through the variant schema returned by Variant.
type CreateSubmissionRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Topic   string `json:"topic" validate:"required,oneof=general billing technical"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`

	// Variant payload. Which of these is required depends on Topic.
	OrderId *uuid.UUID `json:"order_id"`
	PageURL string     `json:"page_url"`
}

// BillingSubmissionVariant requires the order the ticket is about.
type BillingSubmissionVariant struct {
	OrderId *uuid.UUID `validate:"required"`
}

// TechnicalSubmissionVariant requires the page where the issue occurred.
type TechnicalSubmissionVariant struct {
	PageURL string `validate:"required,url"`
}

// Variant returns the topic-specific schema to validate, or nil when
// the topic carries no extra fields.
func (r *CreateSubmissionRequest) Variant() interface{} {
	switch r.Topic {
	case TopicBilling:
		return &BillingSubmissionVariant{OrderId: r.OrderId}
	case TopicTechnical:
		return &TechnicalSubmissionVariant{PageURL: r.PageURL}
	default:
		return nil
	}
}

type SubmissionResponse struct {
	Id        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Topic     string                `json:"topic"`
	Subject   string                `json:"subject"`
	Message   string                `json:"message"`
	OrderId   *uuid.UUID            `json:"order_id,omitempty"`
	PageURL   string                `json:"page_url,omitempty"`
	Status    string                `json:"status"`
	IsRead    bool                  `json:"is_read"`
	CreatedAt time.Time             `json:"created_at"`
	Replies   []TicketReplyResponse `json:"replies,omitempty"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open replied closed"`
}

type TicketReplyRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

type TicketReplyResponse struct {
	Id         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	IsAdmin    bool      `json:"is_admin"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
