package mapper

import (
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	return &entity.Order{
		Id:                 o.Id,
		UserId:             o.UserId,
		PlanId:             o.PlanId,
		PricingOptionLabel: o.PricingOptionLabel,
		OriginalPrice:      o.OriginalPrice,
		DiscountCode:       o.DiscountCode,
		DiscountAmount:     o.DiscountAmount,
		FinalAmount:        o.FinalAmount,
		PaymentMethod:      o.PaymentMethod,
		Status:             entity.OrderStatus(o.Status),
		GatewayReference:   o.GatewayReference,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	return &model.Order{
		Id:                 o.Id,
		UserId:             o.UserId,
		PlanId:             o.PlanId,
		PricingOptionLabel: o.PricingOptionLabel,
		OriginalPrice:      o.OriginalPrice,
		DiscountCode:       o.DiscountCode,
		DiscountAmount:     o.DiscountAmount,
		FinalAmount:        o.FinalAmount,
		PaymentMethod:      o.PaymentMethod,
		Status:             string(o.Status),
		GatewayReference:   o.GatewayReference,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

type UserPlanMapper struct{}

func NewUserPlanMapper() *UserPlanMapper {
	return &UserPlanMapper{}
}

func (m *UserPlanMapper) ToEntity(p *model.UserPlan) *entity.UserPlan {
	if p == nil {
		return nil
	}
	return &entity.UserPlan{
		Id:               p.Id,
		UserId:           p.UserId,
		PlanId:           p.PlanId,
		PlanName:         p.PlanName,
		SubscriptionDate: p.SubscriptionDate,
		EndDate:          p.EndDate,
		Status:           entity.UserPlanStatus(p.Status),
		Remarks:          p.Remarks,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *UserPlanMapper) ToModel(p *entity.UserPlan) *model.UserPlan {
	if p == nil {
		return nil
	}
	return &model.UserPlan{
		Id:               p.Id,
		UserId:           p.UserId,
		PlanId:           p.PlanId,
		PlanName:         p.PlanName,
		SubscriptionDate: p.SubscriptionDate,
		EndDate:          p.EndDate,
		Status:           string(p.Status),
		Remarks:          p.Remarks,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
