package specification

import "gorm.io/gorm"

// CodeMatches looks up a code case-insensitively (discounts, payment methods).
type CodeMatches struct {
	Code string
}

func (s CodeMatches) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(code) = LOWER(?)", s.Code)
}

// StatusIs filters by the status column.
type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ActiveOnly keeps rows flagged active (plans, discounts).
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// EnabledOnly keeps rows flagged enabled (payment methods).
type EnabledOnly struct{}

func (s EnabledOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("enabled = ?", true)
}

// KeyIs filters by the key column (site content, email templates).
type KeyIs struct {
	Key string
}

func (s KeyIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}
