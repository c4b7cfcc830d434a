package model

import (
	"time"

	"github.com/google/uuid"
)

type UserPlan struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId           uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanName         string    `gorm:"type:varchar(255);not null"`
	SubscriptionDate time.Time `gorm:"not null"`
	EndDate          *time.Time
	Status           string    `gorm:"type:varchar(20);not null;index"`
	Remarks          string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (UserPlan) TableName() string {
	return "user_plan_history"
}
