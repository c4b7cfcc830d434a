package contract

import (
	"context"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	Update(ctx context.Context, discount *entity.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error)
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entity.PaymentMethod) error
	Update(ctx context.Context, method *entity.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentMethod, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentMethod, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Admin stats
	SumCompletedRevenue(ctx context.Context) (float64, error)
}

type PlanHistoryRepository interface {
	Create(ctx context.Context, record *entity.UserPlan) error
	Update(ctx context.Context, record *entity.UserPlan) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
