// FILE: internal/entity/support_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusReplied TicketStatus = "replied"
	TicketStatusClosed  TicketStatus = "closed"
)

// ContactSubmission is a support ticket. IsRead tracks whether an admin
// has viewed it and is independent of the status machine.
type ContactSubmission struct {
	Id        uuid.UUID
	UserId    *uuid.UUID // nil for anonymous visitors
	Name      string
	Email     string
	Topic     string
	Subject   string
	Message   string
	OrderId   *uuid.UUID // billing tickets
	PageURL   string     // technical tickets
	Status    TicketStatus
	IsRead    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Replies []TicketReply
}

type TicketReply struct {
	Id           uuid.UUID
	SubmissionId uuid.UUID
	AuthorId     *uuid.UUID
	AuthorName   string
	IsAdmin      bool
	Message      string
	CreatedAt    time.Time
}

// AcceptsReplies reports whether the ticket still takes replies.
// Closed is terminal for replies; open and replied loop freely.
func (c *ContactSubmission) AcceptsReplies() bool {
	return c.Status != TicketStatusClosed
}
