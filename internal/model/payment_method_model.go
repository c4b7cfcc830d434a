package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Code         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Kind         string    `gorm:"type:varchar(20);not null;default:'manual'"`
	Enabled      bool      `gorm:"default:true"`
	Instructions string    `gorm:"type:text"`
	SortOrder    int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
