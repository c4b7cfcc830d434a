package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Topic     string     `gorm:"type:varchar(100);not null"`
	Subject   string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	OrderId   *uuid.UUID `gorm:"type:uuid"`
	PageURL   string     `gorm:"type:varchar(2048)"`
	Status    string     `gorm:"type:varchar(20);not null;default:'open';index"`
	IsRead    bool       `gorm:"default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`

	Replies []*TicketReply `gorm:"foreignKey:SubmissionId;constraint:OnDelete:CASCADE"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

type TicketReply struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorId     *uuid.UUID `gorm:"type:uuid"`
	AuthorName   string     `gorm:"type:varchar(255);not null"`
	IsAdmin      bool       `gorm:"default:false"`
	Message      string     `gorm:"type:text;not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (TicketReply) TableName() string {
	return "ticket_replies"
}
