package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuestionCategory struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Slug      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	ParentId  *uuid.UUID `gorm:"type:uuid;index"`
	SortOrder int        `gorm:"default:0"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (QuestionCategory) TableName() string {
	return "question_categories"
}

type Question struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Text        string         `gorm:"type:text;not null"`
	Options     datatypes.JSON `gorm:"type:jsonb"`
	Answer      string         `gorm:"type:text;not null"`
	Explanation string         `gorm:"type:text"`
	IsActive    bool           `gorm:"default:true"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}

type Paper struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Year         int       `gorm:"default:0"`
	FileURL      string    `gorm:"type:text"`
	Downloadable bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Paper) TableName() string {
	return "papers"
}
