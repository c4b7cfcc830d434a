// FILE: internal/entity/catalog_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuestionCategory struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	ParentId  *uuid.UUID // nil = root
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Question struct {
	Id          uuid.UUID
	CategoryId  uuid.UUID
	Text        string
	Options     []string
	Answer      string
	Explanation string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Paper struct {
	Id           uuid.UUID
	CategoryId   uuid.UUID
	Title        string
	Year         int
	FileURL      string
	Downloadable bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryNode is a QuestionCategory with its resolved children, used by
// the admin screens that render and flatten the tree.
type CategoryNode struct {
	QuestionCategory
	Depth    int
	Children []*CategoryNode
}
