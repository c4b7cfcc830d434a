// FILE: internal/service/discount_service.go
package service

import (
	"context"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDiscountService interface {
	Validate(ctx context.Context, req *dto.ValidateDiscountRequest) (*dto.ValidateDiscountResponse, error)

	// Admin CRUD
	Create(ctx context.Context, req *dto.UpsertDiscountRequest) (*dto.DiscountResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpsertDiscountRequest) (*dto.DiscountResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]*dto.DiscountResponse, error)
}

type discountService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDiscountService(uowFactory unitofwork.RepositoryFactory) IDiscountService {
	return &discountService{uowFactory: uowFactory}
}

// resolveDiscount runs the full redemption check against a plan and
// pricing option. Returns the discount and the computed amounts.
func resolveDiscount(ctx context.Context, uow unitofwork.UnitOfWork, code string, planId uuid.UUID, optionLabel string) (*entity.Discount, *entity.PricingOption, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, nil, apperror.NotFound("plan")
	}

	option := plan.Option(optionLabel)
	if option == nil {
		return nil, nil, apperror.NotFound("pricing option")
	}

	discount, err := uow.DiscountRepository().FindOne(ctx, specification.CodeMatches{Code: code})
	if err != nil {
		return nil, nil, err
	}
	if discount == nil {
		return nil, option, apperror.NotFound("discount code")
	}
	if !discount.Redeemable(time.Now()) {
		return nil, option, apperror.Validation("discount code is no longer redeemable")
	}
	if !discount.AppliesTo(planId, optionLabel) {
		return nil, option, apperror.Validation("discount code does not apply to this plan")
	}
	return discount, option, nil
}

func (s *discountService) Validate(ctx context.Context, req *dto.ValidateDiscountRequest) (*dto.ValidateDiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	discount, option, err := resolveDiscount(ctx, uow, req.Code, req.PlanId, req.OptionLabel)
	if err != nil {
		// Invalid codes are a normal outcome for this endpoint, not an error.
		if option != nil {
			return &dto.ValidateDiscountResponse{
				Valid:       false,
				FinalAmount: option.Price,
				Message:     err.Error(),
			}, nil
		}
		return nil, err
	}

	amount := discount.AmountFor(option.Price)
	return &dto.ValidateDiscountResponse{
		Valid:          true,
		Code:           discount.Code,
		Type:           string(discount.Type),
		DiscountAmount: amount,
		FinalAmount:    option.Price - amount,
	}, nil
}

func (s *discountService) Create(ctx context.Context, req *dto.UpsertDiscountRequest) (*dto.DiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DiscountRepository().FindOne(ctx, specification.CodeMatches{Code: req.Code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("discount code already exists")
	}

	discount := &entity.Discount{
		Id:          uuid.New(),
		Code:        req.Code,
		Type:        entity.DiscountType(req.Type),
		Value:       req.Value,
		PlanId:      req.PlanId,
		OptionLabel: req.OptionLabel,
		IsActive:    req.IsActive,
		ExpiresAt:   req.ExpiresAt,
		CreatedAt:   time.Now(),
	}
	if err := uow.DiscountRepository().Create(ctx, discount); err != nil {
		return nil, err
	}
	return toDiscountResponse(discount), nil
}

func (s *discountService) Update(ctx context.Context, id uuid.UUID, req *dto.UpsertDiscountRequest) (*dto.DiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	discount, err := uow.DiscountRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NotFound("discount")
	}

	discount.Code = req.Code
	discount.Type = entity.DiscountType(req.Type)
	discount.Value = req.Value
	discount.PlanId = req.PlanId
	discount.OptionLabel = req.OptionLabel
	discount.IsActive = req.IsActive
	discount.ExpiresAt = req.ExpiresAt

	if err := uow.DiscountRepository().Update(ctx, discount); err != nil {
		return nil, err
	}
	return toDiscountResponse(discount), nil
}

func (s *discountService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DiscountRepository().Delete(ctx, id)
}

func (s *discountService) GetAll(ctx context.Context) ([]*dto.DiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	discounts, err := uow.DiscountRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	res := make([]*dto.DiscountResponse, len(discounts))
	for i, d := range discounts {
		res[i] = toDiscountResponse(d)
	}
	return res, nil
}

func toDiscountResponse(d *entity.Discount) *dto.DiscountResponse {
	return &dto.DiscountResponse{
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
