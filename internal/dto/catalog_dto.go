// FILE: internal/dto/catalog_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Category DTOs ---

type UpsertCategoryRequest struct {
	Name      string     `json:"name" validate:"required,min=2"`
	Slug      string     `json:"slug" validate:"required,min=2"`
	ParentId  *uuid.UUID `json:"parent_id"`
	SortOrder int        `json:"sort_order"`
}

type CategoryResponse struct {
	Id        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Slug      string              `json:"slug"`
	ParentId  *uuid.UUID          `json:"parent_id,omitempty"`
	SortOrder int                 `json:"sort_order"`
	Children  []*CategoryResponse `json:"children,omitempty"`
}

// FlatCategoryResponse is the depth-annotated form used by admin
// dropdowns that render the tree as an indented list.
type FlatCategoryResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Depth int       `json:"depth"`
}

// --- Question DTOs ---

type UpsertQuestionRequest struct {
	CategoryId  uuid.UUID `json:"category_id" validate:"required"`
	Text        string    `json:"text" validate:"required,min=3"`
	Options     []string  `json:"options" validate:"required,min=2"`
	Answer      string    `json:"answer" validate:"required"`
	Explanation string    `json:"explanation"`
	IsActive    bool      `json:"is_active"`
}

type QuestionResponse struct {
	Id          uuid.UUID `json:"id"`
	CategoryId  uuid.UUID `json:"category_id"`
	Text        string    `json:"text"`
	Options     []string  `json:"options"`
	Answer      string    `json:"answer,omitempty"`
	Explanation string    `json:"explanation,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- Paper DTOs ---

type UpsertPaperRequest struct {
	CategoryId   uuid.UUID `json:"category_id" validate:"required"`
	Title        string    `json:"title" validate:"required,min=3"`
	Year         int       `json:"year" validate:"required,gte=1900"`
	FileURL      string    `json:"file_url" validate:"required,url"`
	Downloadable bool      `json:"downloadable"`
}

type PaperResponse struct {
	Id           uuid.UUID `json:"id"`
	CategoryId   uuid.UUID `json:"category_id"`
	Title        string    `json:"title"`
	Year         int       `json:"year"`
	FileURL      string    `json:"file_url,omitempty"`
	Downloadable bool      `json:"downloadable"`
	CreatedAt    time.Time `json:"created_at"`
}
