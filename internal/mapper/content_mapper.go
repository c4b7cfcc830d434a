package mapper

import (
	"encoding/json"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/model"

	"gorm.io/datatypes"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) SiteContentToEntity(c *model.SiteContent) *entity.SiteContent {
	if c == nil {
		return nil
	}
	var blocks map[string]interface{}
	if len(c.Blocks) > 0 {
		_ = json.Unmarshal(c.Blocks, &blocks)
	}
	return &entity.SiteContent{
		Id:        c.Id,
		Key:       c.Key,
		Blocks:    blocks,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ContentMapper) SiteContentToModel(c *entity.SiteContent) *model.SiteContent {
	if c == nil {
		return nil
	}
	var blocks datatypes.JSON
	if c.Blocks != nil {
		if raw, err := json.Marshal(c.Blocks); err == nil {
			blocks = raw
		}
	}
	return &model.SiteContent{
		Id:        c.Id,
		Key:       c.Key,
		Blocks:    blocks,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ContentMapper) TeamMemberToEntity(t *model.TeamMember) *entity.TeamMember {
	if t == nil {
		return nil
	}
	return &entity.TeamMember{
		Id:        t.Id,
		Name:      t.Name,
		RoleTitle: t.RoleTitle,
		PhotoURL:  t.PhotoURL,
		SortOrder: t.SortOrder,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ContentMapper) TeamMemberToModel(t *entity.TeamMember) *model.TeamMember {
	if t == nil {
		return nil
	}
	return &model.TeamMember{
		Id:        t.Id,
		Name:      t.Name,
		RoleTitle: t.RoleTitle,
		PhotoURL:  t.PhotoURL,
		SortOrder: t.SortOrder,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ContentMapper) TemplateToEntity(t *model.EmailTemplate) *entity.EmailTemplate {
	if t == nil {
		return nil
	}
	var vars []string
	if len(t.Variables) > 0 {
		_ = json.Unmarshal(t.Variables, &vars)
	}
	return &entity.EmailTemplate{
		Id:        t.Id,
		Key:       t.Key,
		Subject:   t.Subject,
		Body:      t.Body,
		Variables: vars,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *ContentMapper) TemplateToModel(t *entity.EmailTemplate) *model.EmailTemplate {
	if t == nil {
		return nil
	}
	var vars datatypes.JSON
	if t.Variables != nil {
		if raw, err := json.Marshal(t.Variables); err == nil {
			vars = raw
		}
	}
	return &model.EmailTemplate{
		Id:        t.Id,
		Key:       t.Key,
		Subject:   t.Subject,
		Body:      t.Body,
		Variables: vars,
		UpdatedAt: t.UpdatedAt,
	}
}
