// FILE: internal/service/plan_service.go
package service

import (
	"context"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/memory"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPlanService interface {
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	GetPlanBySlug(ctx context.Context, slug string) (*dto.PlanResponse, error)

	// Admin
	GetAllPlans(ctx context.Context) ([]*dto.AdminPlanResponse, error)
	CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.AdminPlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req *dto.UpdatePlanRequest) (*dto.AdminPlanResponse, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	AddPricingOption(ctx context.Context, planId uuid.UUID, req *dto.CreatePricingOptionRequest) error
	RemovePricingOption(ctx context.Context, planId, optionId uuid.UUID) error
	AddFeature(ctx context.Context, planId uuid.UUID, req *dto.CreatePlanFeatureRequest) error
	RemoveFeature(ctx context.Context, planId, featureId uuid.UUID) error
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CatalogCache
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, cache *memory.CatalogCache) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *planService) activePlans(ctx context.Context) ([]*entity.Plan, error) {
	if s.cache != nil {
		if plans, found := s.cache.GetPlans(); found {
			return plans, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SavePlans(plans)
	}
	return plans, nil
}

func (s *planService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	plans, err := s.activePlans(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PlanResponse, len(plans))
	for i, p := range plans {
		res[i] = toPlanResponse(p)
	}
	return res, nil
}

func (s *planService) GetPlanBySlug(ctx context.Context, slug string) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := uow.PlanRepository().FindOne(ctx,
		specification.Filter("slug", slug),
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}
	return toPlanResponse(plan), nil
}

func (s *planService) GetAllPlans(ctx context.Context) ([]*dto.AdminPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}
	res := make([]*dto.AdminPlanResponse, len(plans))
	for i, p := range plans {
		res[i] = toAdminPlanResponse(p)
	}
	return res, nil
}

func (s *planService) CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.AdminPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PlanRepository().FindOne(ctx, specification.Filter("slug", req.Slug))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("plan slug already exists")
	}

	plan := &entity.Plan{
		Id:            uuid.New(),
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Tagline:       req.Tagline,
		IsActive:      req.IsActive,
		IsMostPopular: req.IsMostPopular,
		SortOrder:     req.SortOrder,
	}
	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}
	s.invalidate()
	return toAdminPlanResponse(plan), nil
}

func (s *planService) UpdatePlan(ctx context.Context, id uuid.UUID, req *dto.UpdatePlanRequest) (*dto.AdminPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.Tagline = req.Tagline
	plan.IsActive = req.IsActive
	plan.IsMostPopular = req.IsMostPopular
	plan.SortOrder = req.SortOrder

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}
	s.invalidate()
	return toAdminPlanResponse(plan), nil
}

func (s *planService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PlanRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *planService) AddPricingOption(ctx context.Context, planId uuid.UUID, req *dto.CreatePricingOptionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return err
	}
	if plan == nil {
		return apperror.NotFound("plan")
	}
	if plan.Option(req.Label) != nil {
		return apperror.Conflict("pricing option label already exists for this plan")
	}

	option := &entity.PricingOption{
		Id:        uuid.New(),
		PlanId:    planId,
		Label:     req.Label,
		Price:     req.Price,
		Months:    req.Months,
		SortOrder: req.SortOrder,
	}
	if err := uow.PlanRepository().AddOption(ctx, option); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *planService) RemovePricingOption(ctx context.Context, planId, optionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PlanRepository().RemoveOption(ctx, optionId); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *planService) AddFeature(ctx context.Context, planId uuid.UUID, req *dto.CreatePlanFeatureRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return err
	}
	if plan == nil {
		return apperror.NotFound("plan")
	}

	period := entity.QuotaPeriod(req.Period)
	if req.Period == "" {
		period = entity.QuotaPeriodLifetime
	}

	feature := &entity.PlanFeature{
		Id:      uuid.New(),
		PlanId:  planId,
		Text:    req.Text,
		IsQuota: req.IsQuota,
		Key:     req.Key,
		Limit:   req.Limit,
		Period:  period,
	}
	if err := uow.PlanRepository().AddFeature(ctx, feature); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *planService) RemoveFeature(ctx context.Context, planId, featureId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PlanRepository().RemoveFeature(ctx, featureId); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *planService) invalidate() {
	if s.cache != nil {
		s.cache.InvalidatePlans()
	}
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	res := &dto.PlanResponse{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Tagline:       p.Tagline,
		IsMostPopular: p.IsMostPopular,
	}
	for _, o := range p.PricingOptions {
		res.PricingOptions = append(res.PricingOptions, dto.PricingOptionResponse{
			Id:     o.Id,
			Label:  o.Label,
			Price:  o.Price,
			Months: o.Months,
		})
	}
	for _, f := range p.Features {
		res.Features = append(res.Features, dto.PlanFeatureResponse{
			Text:    f.Text,
			IsQuota: f.IsQuota,
			Key:     f.Key,
			Limit:   f.Limit,
			Period:  string(f.Period),
		})
	}
	return res
}

func toAdminPlanResponse(p *entity.Plan) *dto.AdminPlanResponse {
	pub := toPlanResponse(p)
	return &dto.AdminPlanResponse{
		Id:             p.Id,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Tagline:        p.Tagline,
		IsActive:       p.IsActive,
		IsMostPopular:  p.IsMostPopular,
		SortOrder:      p.SortOrder,
		CreatedAt:      p.CreatedAt,
		PricingOptions: pub.PricingOptions,
		Features:       pub.Features,
	}
}
