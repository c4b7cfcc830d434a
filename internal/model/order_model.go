package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId             uuid.UUID `gorm:"type:uuid;not null;index"`
	PricingOptionLabel string    `gorm:"type:varchar(100);not null"`
	OriginalPrice      float64   `gorm:"type:decimal(10,2);not null"`
	DiscountCode       *string   `gorm:"type:varchar(100)"`
	DiscountAmount     float64   `gorm:"type:decimal(10,2);default:0"`
	FinalAmount        float64   `gorm:"type:decimal(10,2);not null"`
	PaymentMethod      string    `gorm:"type:varchar(100);not null"`
	Status             string    `gorm:"type:varchar(20);not null;index"`
	GatewayReference   *string   `gorm:"type:varchar(255)"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
