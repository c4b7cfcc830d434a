// FILE: internal/entity/content_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SiteContent is one key-value block of editable page content
// (about/contact copy and the like).
type SiteContent struct {
	Id        uuid.UUID
	Key       string
	Blocks    map[string]interface{}
	UpdatedAt time.Time
}

type TeamMember struct {
	Id        uuid.UUID
	Name      string
	RoleTitle string
	PhotoURL  string
	SortOrder int
	CreatedAt time.Time
}

// EmailTemplate is an admin-edited template; Body is HTML with
// {{.Variable}} placeholders listed in Variables.
type EmailTemplate struct {
	Id        uuid.UUID
	Key       string
	Subject   string
	Body      string
	Variables []string
	UpdatedAt time.Time
}

const (
	EmailTemplateOrderConfirmation = "order_confirmation"
	EmailTemplatePasswordReset     = "password_reset"
	EmailTemplateTicketReply       = "ticket_reply"
)
