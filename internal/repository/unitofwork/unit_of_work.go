package unitofwork

import (
	"context"

	"exam-prep-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PlanRepository() contract.PlanRepository
	DiscountRepository() contract.DiscountRepository
	PaymentMethodRepository() contract.PaymentMethodRepository
	OrderRepository() contract.OrderRepository
	PlanHistoryRepository() contract.PlanHistoryRepository
	UsageRepository() contract.UsageRepository
	SupportRepository() contract.SupportRepository
	CategoryRepository() contract.CategoryRepository
	QuestionRepository() contract.QuestionRepository
	PaperRepository() contract.PaperRepository
	ContentRepository() contract.ContentRepository
	EmailTemplateRepository() contract.EmailTemplateRepository
}
