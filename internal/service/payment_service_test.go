package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedManualMethod(store *fakeStore) *entity.PaymentMethod {
	m := &entity.PaymentMethod{
		Id:           uuid.New(),
		Name:         "Bank Transfer",
		Code:         "bank_transfer",
		Kind:         entity.PaymentMethodKindManual,
		Enabled:      true,
		Instructions: "Transfer to account 123456 and attach the receipt.",
	}
	store.methods = append(store.methods, m)
	return m
}

func TestCheckoutManualMethod(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	method := seedManualMethod(factory.store)

	svc := NewPaymentService(factory, nil, nil, nil)

	res, err := svc.Checkout(context.Background(), user.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		OptionLabel:   "Monthly",
		PaymentMethod: "bank_transfer",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusPending), res.Status)
	assert.Equal(t, 49000.0, res.FinalAmount)
	assert.Equal(t, method.Instructions, res.Instructions)
	assert.Len(t, factory.store.orders, 1)
}

func TestCheckoutWithDiscount(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)
	seedDiscount(factory.store, "SAVE50", entity.DiscountTypePercentage, 50)

	svc := NewPaymentService(factory, nil, nil, nil)

	res, err := svc.Checkout(context.Background(), user.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		OptionLabel:   "Monthly",
		PaymentMethod: "bank_transfer",
		DiscountCode:  "SAVE50",
	})
	assert.NoError(t, err)
	assert.Equal(t, 24500.0, res.FinalAmount)

	order := factory.store.orders[0]
	assert.Equal(t, 49000.0, order.OriginalPrice)
	assert.Equal(t, 24500.0, order.DiscountAmount)
	assert.NotNil(t, order.DiscountCode)
}

func TestCheckoutFlatDiscountThroughCompletion(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)
	seedDiscount(factory.store, "SAVE200", entity.DiscountTypeFlat, 200)

	svc := NewPaymentService(factory, nil, nil, nil)

	res, err := svc.Checkout(context.Background(), user.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		OptionLabel:   "Monthly",
		PaymentMethod: "bank_transfer",
		DiscountCode:  "SAVE200",
	})
	assert.NoError(t, err)
	assert.Equal(t, 48800.0, res.FinalAmount)

	processed, err := svc.ProcessOrder(context.Background(), res.OrderId, &dto.ProcessOrderRequest{Action: "complete"})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCompleted), processed.Status)
	assert.Len(t, currentRecords(factory.store, user.Id), 1)
}

func TestCheckoutFullyDiscountedSettlesImmediately(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)
	seedDiscount(factory.store, "FREEBIE", entity.DiscountTypePercentage, 100)

	svc := NewPaymentService(factory, nil, nil, nil)

	res, err := svc.Checkout(context.Background(), user.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		OptionLabel:   "Monthly",
		PaymentMethod: "bank_transfer",
		DiscountCode:  "FREEBIE",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCompleted), res.Status)
	assert.Equal(t, 0.0, res.FinalAmount)

	// Settlement puts the user on the plan right away.
	assert.Len(t, currentRecords(factory.store, user.Id), 1)
	assert.NotNil(t, user.PlanId)
	assert.Equal(t, plan.Id, *user.PlanId)
}

func TestCheckoutDisabledMethod(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	method := seedManualMethod(factory.store)
	method.Enabled = false

	svc := NewPaymentService(factory, nil, nil, nil)

	_, err := svc.Checkout(context.Background(), user.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		OptionLabel:   "Monthly",
		PaymentMethod: "bank_transfer",
	})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func pendingOrder(t *testing.T, svc IPaymentService, userId, planId uuid.UUID) uuid.UUID {
	t.Helper()
	res, err := svc.Checkout(context.Background(), userId, &dto.CheckoutRequest{
		PlanId:        planId,
		OptionLabel:   "Monthly",
		PaymentMethod: "bank_transfer",
	})
	assert.NoError(t, err)
	return res.OrderId
}

func TestProcessOrderComplete(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)

	svc := NewPaymentService(factory, nil, nil, nil)
	orderId := pendingOrder(t, svc, user.Id, plan.Id)

	res, err := svc.ProcessOrder(context.Background(), orderId, &dto.ProcessOrderRequest{Action: "complete"})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCompleted), res.Status)

	current := currentRecords(factory.store, user.Id)
	assert.Len(t, current, 1)
	assert.Equal(t, "manual complete", current[0].Remarks)
}

func TestProcessOrderIdempotent(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)

	svc := NewPaymentService(factory, nil, nil, nil)
	orderId := pendingOrder(t, svc, user.Id, plan.Id)

	_, err := svc.ProcessOrder(context.Background(), orderId, &dto.ProcessOrderRequest{Action: "complete"})
	assert.NoError(t, err)

	// Re-completing an already completed order changes nothing.
	_, err = svc.ProcessOrder(context.Background(), orderId, &dto.ProcessOrderRequest{Action: "complete"})
	assert.NoError(t, err)
	assert.Len(t, currentRecords(factory.store, user.Id), 1)
	assert.Len(t, factory.store.history, 1)
}

func TestProcessOrderTerminalTransitionRejected(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)

	svc := NewPaymentService(factory, nil, nil, nil)
	orderId := pendingOrder(t, svc, user.Id, plan.Id)

	_, err := svc.ProcessOrder(context.Background(), orderId, &dto.ProcessOrderRequest{Action: "complete"})
	assert.NoError(t, err)

	_, err = svc.ProcessOrder(context.Background(), orderId, &dto.ProcessOrderRequest{Action: "refund"})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestSettlementBlockedByPlanLock(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)

	locker := newFakeLocker()
	svc := NewPaymentService(factory, locker, nil, nil)
	orderId := pendingOrder(t, svc, user.Id, plan.Id)

	// A plan change in flight holds the user's lock; the settlement
	// must back off instead of racing it.
	token, err := locker.TryLock(context.Background(), userPlanLockKey(user.Id), 10*time.Second)
	assert.NoError(t, err)

	_, err = svc.ProcessOrder(context.Background(), orderId, &dto.ProcessOrderRequest{Action: "complete"})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
	assert.Empty(t, currentRecords(factory.store, user.Id))

	assert.NoError(t, locker.Unlock(context.Background(), userPlanLockKey(user.Id), token))

	res, err := svc.ProcessOrder(context.Background(), orderId, &dto.ProcessOrderRequest{Action: "complete"})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCompleted), res.Status)
	assert.Len(t, currentRecords(factory.store, user.Id), 1)
	// The settlement released the lock on its way out.
	assert.Empty(t, locker.held)
}

func TestProcessOrderUnknownAction(t *testing.T) {
	factory := newFakeFactory()
	svc := NewPaymentService(factory, nil, nil, nil)

	_, err := svc.ProcessOrder(context.Background(), uuid.New(), &dto.ProcessOrderRequest{Action: "approve"})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestGetOrderSummaryWithDiscount(t *testing.T) {
	factory := newFakeFactory()
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedDiscount(factory.store, "SAVE10", entity.DiscountTypePercentage, 10)

	svc := NewPaymentService(factory, nil, nil, nil)

	summary, err := svc.GetOrderSummary(context.Background(), &dto.OrderSummaryRequest{
		PlanId:       plan.Id,
		OptionLabel:  "Monthly",
		DiscountCode: "SAVE10",
	})
	assert.NoError(t, err)
	assert.Equal(t, 49000.0, summary.OriginalPrice)
	assert.Equal(t, 4900.0, summary.DiscountAmount)
	assert.Equal(t, 44100.0, summary.FinalAmount)
}

func TestGetPaymentMethodsSkipsDisabled(t *testing.T) {
	factory := newFakeFactory()
	seedManualMethod(factory.store)
	disabled := seedManualMethod(factory.store)
	disabled.Code = "legacy"
	disabled.Enabled = false

	svc := NewPaymentService(factory, nil, nil, nil)

	methods, err := svc.GetPaymentMethods(context.Background())
	assert.NoError(t, err)
	assert.Len(t, methods, 1)

	all, err := svc.GetAllPaymentMethods(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreatePaymentMethodCodeConflict(t *testing.T) {
	factory := newFakeFactory()
	seedManualMethod(factory.store)

	svc := NewPaymentService(factory, nil, nil, nil)

	_, err := svc.CreatePaymentMethod(context.Background(), &dto.UpsertPaymentMethodRequest{
		Name: "Bank Transfer 2",
		Code: "BANK_TRANSFER",
		Kind: "manual",
	})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestGetOrderScopedToOwner(t *testing.T) {
	factory := newFakeFactory()
	user := seedUser(factory.store, "alice@example.com")
	other := seedUser(factory.store, "bob@example.com")
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedManualMethod(factory.store)

	svc := NewPaymentService(factory, nil, nil, nil)
	orderId := pendingOrder(t, svc, user.Id, plan.Id)

	_, err := svc.GetOrder(context.Background(), user.Id, orderId)
	assert.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), other.Id, orderId)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
