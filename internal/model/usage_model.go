package model

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index:idx_bookmarks_user"`
	QuestionId uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

type Download struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_downloads_user"`
	PaperId   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Download) TableName() string {
	return "downloads"
}
