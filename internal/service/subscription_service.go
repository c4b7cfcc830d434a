// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"
	"exam-prep-be/pkg/lock"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	// ChangePlan moves the user onto a new plan: the previous current
	// history record is expired and a single new current record is
	// created. A non-nil endDate overrides the option-derived one.
	// Serialized per user.
	ChangePlan(ctx context.Context, userId, planId uuid.UUID, optionLabel, remarks string, endDate *time.Time) (*entity.UserPlan, error)

	// Cancel marks the user's current plan record cancelled and clears
	// the denormalized plan pointer.
	Cancel(ctx context.Context, userId uuid.UUID, remarks string) error

	GetStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.PlanHistoryResponse, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	locker     lock.Locker
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, locker lock.Locker) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func userPlanLockKey(userId uuid.UUID) string {
	return fmt.Sprintf("lock:user-plan:%s", userId)
}

func (s *subscriptionService) ChangePlan(ctx context.Context, userId, planId uuid.UUID, optionLabel, remarks string, endDate *time.Time) (*entity.UserPlan, error) {
	if s.locker != nil {
		token, err := s.locker.TryLock(ctx, userPlanLockKey(userId), 10*time.Second)
		if err != nil {
			return nil, apperror.Conflict("another plan change is in progress")
		}
		defer s.locker.Unlock(ctx, userPlanLockKey(userId), token)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}

	option := plan.Option(optionLabel)
	if option == nil {
		return nil, apperror.NotFound("pricing option")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	record, err := applyPlanChange(ctx, uow, user, plan, option, remarks, endDate)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return record, nil
}

// applyPlanChange expires the previous current history record and writes
// the new one, keeping the user's denormalized plan pointer in sync.
// The caller owns the surrounding transaction.
func applyPlanChange(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, plan *entity.Plan, option *entity.PricingOption, remarks string, endDate *time.Time) (*entity.UserPlan, error) {
	now := time.Now()

	current, err := uow.PlanHistoryRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.StatusIs{Status: string(entity.UserPlanStatusCurrent)},
	)
	if err != nil {
		return nil, err
	}
	if current != nil {
		current.Status = entity.UserPlanStatusExpired
		current.UpdatedAt = now
		if err := uow.PlanHistoryRepository().Update(ctx, current); err != nil {
			return nil, err
		}
	}

	if endDate == nil {
		endDate = option.EndDate(now)
	}
	record := &entity.UserPlan{
		Id:               uuid.New(),
		UserId:           user.Id,
		PlanId:           plan.Id,
		PlanName:         plan.Name,
		SubscriptionDate: now,
		EndDate:          endDate,
		Status:           entity.UserPlanStatusCurrent,
		Remarks:          remarks,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uow.PlanHistoryRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	user.PlanId = &plan.Id
	user.PlanExpiryDate = record.EndDate
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userId uuid.UUID, remarks string) error {
	if s.locker != nil {
		token, err := s.locker.TryLock(ctx, userPlanLockKey(userId), 10*time.Second)
		if err != nil {
			return apperror.Conflict("another plan change is in progress")
		}
		defer s.locker.Unlock(ctx, userPlanLockKey(userId), token)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	current, err := uow.PlanHistoryRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.StatusIs{Status: string(entity.UserPlanStatusCurrent)},
	)
	if err != nil {
		return err
	}
	if current == nil {
		return apperror.NotFound("active subscription")
	}

	current.Status = entity.UserPlanStatusCancelled
	current.Remarks = remarks
	current.UpdatedAt = time.Now()
	if err := uow.PlanHistoryRepository().Update(ctx, current); err != nil {
		return err
	}

	user.PlanId = nil
	user.PlanExpiryDate = nil
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *subscriptionService) GetStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.PlanHistoryRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.StatusIs{Status: string(entity.UserPlanStatusCurrent)},
	)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &dto.SubscriptionStatusResponse{HasPlan: false}, nil
	}

	// Bounded plans lapse lazily; report them as absent once past the end.
	if current.Lapsed(time.Now()) {
		return &dto.SubscriptionStatusResponse{HasPlan: false}, nil
	}

	start := current.SubscriptionDate
	return &dto.SubscriptionStatusResponse{
		HasPlan:    true,
		PlanId:     &current.PlanId,
		PlanName:   current.PlanName,
		StartDate:  &start,
		ExpiryDate: current.EndDate,
	}, nil
}

func (s *subscriptionService) GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.PlanHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.PlanHistoryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PlanHistoryResponse, len(records))
	for i, r := range records {
		res[i] = &dto.PlanHistoryResponse{
			Id:               r.Id,
			PlanId:           r.PlanId,
			PlanName:         r.PlanName,
			SubscriptionDate: r.SubscriptionDate,
			EndDate:          r.EndDate,
			Status:           string(r.Status),
			Remarks:          r.Remarks,
		}
	}
	return res, nil
}
