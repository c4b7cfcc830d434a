package model

import (
	"time"

	"github.com/google/uuid"
)

type Discount struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Value       float64    `gorm:"type:decimal(10,2);not null"`
	PlanId      *uuid.UUID `gorm:"type:uuid;index"`
	OptionLabel *string    `gorm:"type:varchar(100)"`
	IsActive    bool       `gorm:"default:true"`
	ExpiresAt   *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Discount) TableName() string {
	return "discounts"
}
