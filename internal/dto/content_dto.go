// FILE: internal/dto/content_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertContentRequest struct {
	Blocks map[string]interface{} `json:"blocks" validate:"required"`
}

type ContentResponse struct {
	Key       string                 `json:"key"`
	Blocks    map[string]interface{} `json:"blocks"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type UpsertTeamMemberRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	RoleTitle string `json:"role_title" validate:"required"`
	PhotoURL  string `json:"photo_url"`
	SortOrder int    `json:"sort_order"`
}

type TeamMemberResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	RoleTitle string    `json:"role_title"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	SortOrder int       `json:"sort_order"`
}

type UpsertEmailTemplateRequest struct {
	Key       string   `json:"key" validate:"required"`
	Subject   string   `json:"subject" validate:"required"`
	Body      string   `json:"body" validate:"required"`
	Variables []string `json:"variables"`
}

type EmailTemplateResponse struct {
	Id        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Variables []string  `json:"variables,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
