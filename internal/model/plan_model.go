package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description   string    `gorm:"type:text"`
	Tagline       string    `gorm:"type:text"`
	IsActive      bool      `gorm:"default:true"`
	IsMostPopular bool      `gorm:"default:false"`
	SortOrder     int       `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	// Relations
	PricingOptions []*PricingOption `gorm:"foreignKey:PlanId;constraint:OnDelete:CASCADE"`
	Features       []*PlanFeature   `gorm:"foreignKey:PlanId;constraint:OnDelete:CASCADE"`
}

func (Plan) TableName() string {
	return "plans"
}

type PricingOption struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(100);not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null"`
	Months    int       `gorm:"default:0"` // 0 = lifetime
	SortOrder int       `gorm:"default:0"`
}

func (PricingOption) TableName() string {
	return "pricing_options"
}

type PlanFeature struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Text    string    `gorm:"type:text;not null"`
	IsQuota bool      `gorm:"default:false"`
	Key     string    `gorm:"type:varchar(100)"`
	Limit   int       `gorm:"column:quota_limit;default:0"` // -1 = unlimited
	Period  string    `gorm:"type:varchar(20);default:'lifetime'"`
}

func (PlanFeature) TableName() string {
	return "plan_features"
}
