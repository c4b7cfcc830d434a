// FILE: internal/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// PublishEmailMessage is the watermill payload for queued email sends.
// TemplateKey selects the stored template; Data fills its placeholders.
type PublishEmailMessage struct {
	ToEmail     string            `json:"to_email"`
	TemplateKey string            `json:"template_key"`
	Data        map[string]string `json:"data"`
	OrderId     *uuid.UUID        `json:"order_id,omitempty"`
}

// NotificationMessage is the real-time payload pushed over websocket.
// Notifications are ephemeral; nothing is persisted server-side.
type NotificationMessage struct {
	Id        uuid.UUID              `json:"id"`
	TypeCode  string                 `json:"type_code"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
