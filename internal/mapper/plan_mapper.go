package mapper

import (
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:             p.Id,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Tagline:        p.Tagline,
		IsActive:       p.IsActive,
		IsMostPopular:  p.IsMostPopular,
		SortOrder:      p.SortOrder,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		PricingOptions: m.optionsToEntities(p.PricingOptions),
		Features:       m.featuresToEntities(p.Features),
	}
}

func (m *PlanMapper) ToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:             p.Id,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Tagline:        p.Tagline,
		IsActive:       p.IsActive,
		IsMostPopular:  p.IsMostPopular,
		SortOrder:      p.SortOrder,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		PricingOptions: m.optionsToModels(p.PricingOptions),
		Features:       m.featuresToModels(p.Features),
	}
}

func (m *PlanMapper) OptionToEntity(o *model.PricingOption) *entity.PricingOption {
	if o == nil {
		return nil
	}
	return &entity.PricingOption{
		Id:        o.Id,
		PlanId:    o.PlanId,
		Label:     o.Label,
		Price:     o.Price,
		Months:    o.Months,
		SortOrder: o.SortOrder,
	}
}

func (m *PlanMapper) OptionToModel(o *entity.PricingOption) *model.PricingOption {
	if o == nil {
		return nil
	}
	return &model.PricingOption{
		Id:        o.Id,
		PlanId:    o.PlanId,
		Label:     o.Label,
		Price:     o.Price,
		Months:    o.Months,
		SortOrder: o.SortOrder,
	}
}

func (m *PlanMapper) FeatureToEntity(f *model.PlanFeature) *entity.PlanFeature {
	if f == nil {
		return nil
	}
	return &entity.PlanFeature{
		Id:      f.Id,
		PlanId:  f.PlanId,
		Text:    f.Text,
		IsQuota: f.IsQuota,
		Key:     f.Key,
		Limit:   f.Limit,
		Period:  entity.QuotaPeriod(f.Period),
	}
}

func (m *PlanMapper) FeatureToModel(f *entity.PlanFeature) *model.PlanFeature {
	if f == nil {
		return nil
	}
	return &model.PlanFeature{
		Id:      f.Id,
		PlanId:  f.PlanId,
		Text:    f.Text,
		IsQuota: f.IsQuota,
		Key:     f.Key,
		Limit:   f.Limit,
		Period:  string(f.Period),
	}
}

func (m *PlanMapper) optionsToEntities(models []*model.PricingOption) []entity.PricingOption {
	if models == nil {
		return nil
	}
	entities := make([]entity.PricingOption, len(models))
	for i, mdl := range models {
		if val := m.OptionToEntity(mdl); val != nil {
			entities[i] = *val
		}
	}
	return entities
}

func (m *PlanMapper) optionsToModels(entities []entity.PricingOption) []*model.PricingOption {
	if entities == nil {
		return nil
	}
	models := make([]*model.PricingOption, len(entities))
	for i, ent := range entities {
		models[i] = m.OptionToModel(&ent)
	}
	return models
}

func (m *PlanMapper) featuresToEntities(models []*model.PlanFeature) []entity.PlanFeature {
	if models == nil {
		return nil
	}
	entities := make([]entity.PlanFeature, len(models))
	for i, mdl := range models {
		if val := m.FeatureToEntity(mdl); val != nil {
			entities[i] = *val
		}
	}
	return entities
}

func (m *PlanMapper) featuresToModels(entities []entity.PlanFeature) []*model.PlanFeature {
	if entities == nil {
		return nil
	}
	models := make([]*model.PlanFeature, len(entities))
	for i, ent := range entities {
		models[i] = m.FeatureToModel(&ent)
	}
	return models
}
