package mapper

import (
	"encoding/json"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/model"

	"gorm.io/datatypes"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CategoryToEntity(c *model.QuestionCategory) *entity.QuestionCategory {
	if c == nil {
		return nil
	}
	return &entity.QuestionCategory{
		Id:        c.Id,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentId:  c.ParentId,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CatalogMapper) CategoryToModel(c *entity.QuestionCategory) *model.QuestionCategory {
	if c == nil {
		return nil
	}
	return &model.QuestionCategory{
		Id:        c.Id,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentId:  c.ParentId,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CatalogMapper) QuestionToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	var options []string
	if len(q.Options) > 0 {
		// Malformed rows degrade to no options rather than failing reads.
		_ = json.Unmarshal(q.Options, &options)
	}
	return &entity.Question{
		Id:          q.Id,
		CategoryId:  q.CategoryId,
		Text:        q.Text,
		Options:     options,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		IsActive:    q.IsActive,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *CatalogMapper) QuestionToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	var options datatypes.JSON
	if q.Options != nil {
		if raw, err := json.Marshal(q.Options); err == nil {
			options = raw
		}
	}
	return &model.Question{
		Id:          q.Id,
		CategoryId:  q.CategoryId,
		Text:        q.Text,
		Options:     options,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		IsActive:    q.IsActive,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *CatalogMapper) PaperToEntity(p *model.Paper) *entity.Paper {
	if p == nil {
		return nil
	}
	return &entity.Paper{
		Id:           p.Id,
		CategoryId:   p.CategoryId,
		Title:        p.Title,
		Year:         p.Year,
		FileURL:      p.FileURL,
		Downloadable: p.Downloadable,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *CatalogMapper) PaperToModel(p *entity.Paper) *model.Paper {
	if p == nil {
		return nil
	}
	return &model.Paper{
		Id:           p.Id,
		CategoryId:   p.CategoryId,
		Title:        p.Title,
		Year:         p.Year,
		FileURL:      p.FileURL,
		Downloadable: p.Downloadable,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
