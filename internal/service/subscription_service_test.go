package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedPlanWithOptions(store *fakeStore, name, slug string) *entity.Plan {
	plan := &entity.Plan{
		Id:       uuid.New(),
		Name:     name,
		Slug:     slug,
		IsActive: true,
	}
	plan.PricingOptions = []entity.PricingOption{
		{Id: uuid.New(), PlanId: plan.Id, Label: "Monthly", Price: 49000, Months: 1},
		{Id: uuid.New(), PlanId: plan.Id, Label: "Lifetime", Price: 990000, Months: 0},
	}
	store.plans = append(store.plans, plan)
	return plan
}

func seedUser(store *fakeStore, email string) *entity.User {
	user := &entity.User{
		Id:     uuid.New(),
		Email:  email,
		Status: entity.UserStatusActive,
		Role:   entity.UserRoleUser,
	}
	store.users = append(store.users, user)
	return user
}

func currentRecords(store *fakeStore, userId uuid.UUID) []*entity.UserPlan {
	var out []*entity.UserPlan
	for _, r := range store.history {
		if r.UserId == userId && r.Status == entity.UserPlanStatusCurrent {
			out = append(out, r)
		}
	}
	return out
}

func TestChangePlanCreatesCurrentRecord(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")

	svc := NewSubscriptionService(factory, nil)

	record, err := svc.ChangePlan(context.Background(), user.Id, plan.Id, "monthly", "checkout", nil)
	assert.NoError(t, err)
	assert.Equal(t, entity.UserPlanStatusCurrent, record.Status)
	assert.Equal(t, plan.Name, record.PlanName)
	assert.NotNil(t, record.EndDate)

	assert.NotNil(t, user.PlanId)
	assert.Equal(t, plan.Id, *user.PlanId)
	assert.Equal(t, record.EndDate, user.PlanExpiryDate)
}

func TestChangePlanExpiresPreviousRecord(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	first := seedPlanWithOptions(factory.store, "Basic", "basic")
	second := seedPlanWithOptions(factory.store, "Premium", "premium")

	svc := NewSubscriptionService(factory, nil)

	_, err := svc.ChangePlan(context.Background(), user.Id, first.Id, "Monthly", "", nil)
	assert.NoError(t, err)
	_, err = svc.ChangePlan(context.Background(), user.Id, second.Id, "Lifetime", "upgrade", nil)
	assert.NoError(t, err)

	current := currentRecords(factory.store, user.Id)
	assert.Len(t, current, 1)
	assert.Equal(t, second.Id, current[0].PlanId)
	assert.Nil(t, current[0].EndDate)

	assert.Len(t, factory.store.history, 2)
	var expired int
	for _, r := range factory.store.history {
		if r.Status == entity.UserPlanStatusExpired {
			expired++
		}
	}
	assert.Equal(t, 1, expired)
}

func TestChangePlanExplicitEndDate(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")

	svc := NewSubscriptionService(factory, nil)

	override := time.Now().AddDate(0, 0, 14)
	record, err := svc.ChangePlan(context.Background(), user.Id, plan.Id, "Monthly", "trial", &override)
	assert.NoError(t, err)
	assert.NotNil(t, record.EndDate)
	assert.Equal(t, override, *record.EndDate)
	assert.Equal(t, &override, user.PlanExpiryDate)
}

func TestChangePlanUnknownPlan(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSubscriptionService(factory, nil)

	_, err := svc.ChangePlan(context.Background(), user.Id, uuid.New(), "Monthly", "", nil)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestChangePlanUnknownOption(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")

	svc := NewSubscriptionService(factory, nil)

	_, err := svc.ChangePlan(context.Background(), user.Id, plan.Id, "weekly", "", nil)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCancelClearsPlanPointer(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")

	svc := NewSubscriptionService(factory, nil)

	_, err := svc.ChangePlan(context.Background(), user.Id, plan.Id, "Monthly", "", nil)
	assert.NoError(t, err)

	err = svc.Cancel(context.Background(), user.Id, "user requested")
	assert.NoError(t, err)

	assert.Nil(t, user.PlanId)
	assert.Nil(t, user.PlanExpiryDate)
	assert.Empty(t, currentRecords(factory.store, user.Id))
	assert.Equal(t, entity.UserPlanStatusCancelled, factory.store.history[0].Status)
	assert.Equal(t, "user requested", factory.store.history[0].Remarks)
}

func TestCancelWithoutSubscription(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")

	svc := NewSubscriptionService(factory, nil)

	err := svc.Cancel(context.Background(), user.Id, "")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestGetStatus(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")

	svc := NewSubscriptionService(factory, nil)

	status, err := svc.GetStatus(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.False(t, status.HasPlan)

	_, err = svc.ChangePlan(context.Background(), user.Id, plan.Id, "Monthly", "", nil)
	assert.NoError(t, err)

	status, err = svc.GetStatus(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.True(t, status.HasPlan)
	assert.Equal(t, "Premium", status.PlanName)
	assert.NotNil(t, status.ExpiryDate)
}

func TestGetStatusLapsedPlan(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")

	end := time.Now().Add(-time.Hour)
	factory.store.history = append(factory.store.history, &entity.UserPlan{
		Id:               uuid.New(),
		UserId:           user.Id,
		PlanId:           plan.Id,
		PlanName:         plan.Name,
		SubscriptionDate: end.AddDate(0, -1, 0),
		EndDate:          &end,
		Status:           entity.UserPlanStatusCurrent,
	})

	svc := NewSubscriptionService(factory, nil)

	status, err := svc.GetStatus(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.False(t, status.HasPlan)
}
