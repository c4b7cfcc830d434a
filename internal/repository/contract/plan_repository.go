package contract

import (
	"context"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)

	// Pricing options and features are managed as plan children.
	AddOption(ctx context.Context, option *entity.PricingOption) error
	RemoveOption(ctx context.Context, id uuid.UUID) error
	AddFeature(ctx context.Context, feature *entity.PlanFeature) error
	RemoveFeature(ctx context.Context, id uuid.UUID) error
}
