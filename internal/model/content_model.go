package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SiteContent struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key       string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Blocks    datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (SiteContent) TableName() string {
	return "site_contents"
}

type TeamMember struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	RoleTitle string    `gorm:"type:varchar(255)"`
	PhotoURL  string    `gorm:"type:text"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

type EmailTemplate struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key       string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Subject   string         `gorm:"type:varchar(255);not null"`
	Body      string         `gorm:"type:text;not null"`
	Variables datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (EmailTemplate) TableName() string {
	return "email_templates"
}
