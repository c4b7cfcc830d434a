package mapper

import (
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/model"
)

type DiscountMapper struct{}

func NewDiscountMapper() *DiscountMapper {
	return &DiscountMapper{}
}

func (m *DiscountMapper) ToEntity(d *model.Discount) *entity.Discount {
	if d == nil {
		return nil
	}
	return &entity.Discount{
		Id:          d.Id,
		Code:        d.Code,
		Type:        entity.DiscountType(d.Type),
		Value:       d.Value,
		PlanId:      d.PlanId,
		OptionLabel: d.OptionLabel,
		IsActive:    d.IsActive,
		ExpiresAt:   d.ExpiresAt,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *DiscountMapper) ToModel(d *entity.Discount) *model.Discount {
	if d == nil {
		return nil
	}
	return &model.Discount{
		Id:          d.Id,
		Code:        d.Code,
		Type:        string(d.Type),
		Value:       d.Value,
		PlanId:      d.PlanId,
		OptionLabel: d.OptionLabel,
		IsActive:    d.IsActive,
		ExpiresAt:   d.ExpiresAt,
		CreatedAt:   d.CreatedAt,
	}
}

type PaymentMethodMapper struct{}

func NewPaymentMethodMapper() *PaymentMethodMapper {
	return &PaymentMethodMapper{}
}

func (m *PaymentMethodMapper) ToEntity(p *model.PaymentMethod) *entity.PaymentMethod {
	if p == nil {
		return nil
	}
	return &entity.PaymentMethod{
		Id:           p.Id,
		Name:         p.Name,
		Code:         p.Code,
		Kind:         entity.PaymentMethodKind(p.Kind),
		Enabled:      p.Enabled,
		Instructions: p.Instructions,
		SortOrder:    p.SortOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *PaymentMethodMapper) ToModel(p *entity.PaymentMethod) *model.PaymentMethod {
	if p == nil {
		return nil
	}
	return &model.PaymentMethod{
		Id:           p.Id,
		Name:         p.Name,
		Code:         p.Code,
		Kind:         string(p.Kind),
		Enabled:      p.Enabled,
		Instructions: p.Instructions,
		SortOrder:    p.SortOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
