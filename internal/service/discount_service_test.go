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

func seedDiscount(store *fakeStore, code string, dType entity.DiscountType, value float64) *entity.Discount {
	d := &entity.Discount{
		Id:       uuid.New(),
		Code:     code,
		Type:     dType,
		Value:    value,
		IsActive: true,
	}
	store.discounts = append(store.discounts, d)
	return d
}

func TestValidateDiscountPercentage(t *testing.T) {
	factory := newFakeFactory()
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedDiscount(factory.store, "SAVE10", entity.DiscountTypePercentage, 10)

	svc := NewDiscountService(factory)

	res, err := svc.Validate(context.Background(), &dto.ValidateDiscountRequest{
		Code:        "save10",
		PlanId:      plan.Id,
		OptionLabel: "Monthly",
	})
	assert.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "SAVE10", res.Code)
	assert.Equal(t, 4900.0, res.DiscountAmount)
	assert.Equal(t, 44100.0, res.FinalAmount)
}

func TestValidateDiscountFlatClamped(t *testing.T) {
	factory := newFakeFactory()
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	seedDiscount(factory.store, "BIGCUT", entity.DiscountTypeFlat, 100000)

	svc := NewDiscountService(factory)

	res, err := svc.Validate(context.Background(), &dto.ValidateDiscountRequest{
		Code:        "BIGCUT",
		PlanId:      plan.Id,
		OptionLabel: "Monthly",
	})
	assert.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 49000.0, res.DiscountAmount)
	assert.Equal(t, 0.0, res.FinalAmount)
}

func TestValidateDiscountUnknownCode(t *testing.T) {
	factory := newFakeFactory()
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")

	svc := NewDiscountService(factory)

	res, err := svc.Validate(context.Background(), &dto.ValidateDiscountRequest{
		Code:        "NOPE",
		PlanId:      plan.Id,
		OptionLabel: "Monthly",
	})
	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, 49000.0, res.FinalAmount)
}

func TestValidateDiscountExpiredCode(t *testing.T) {
	factory := newFakeFactory()
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	d := seedDiscount(factory.store, "OLD", entity.DiscountTypePercentage, 50)
	past := time.Now().Add(-time.Hour)
	d.ExpiresAt = &past

	svc := NewDiscountService(factory)

	res, err := svc.Validate(context.Background(), &dto.ValidateDiscountRequest{
		Code:        "OLD",
		PlanId:      plan.Id,
		OptionLabel: "Monthly",
	})
	assert.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestValidateDiscountPlanRestricted(t *testing.T) {
	factory := newFakeFactory()
	premium := seedPlanWithOptions(factory.store, "Premium", "premium")
	basic := seedPlanWithOptions(factory.store, "Basic", "basic")
	d := seedDiscount(factory.store, "PREMONLY", entity.DiscountTypePercentage, 20)
	d.PlanId = &premium.Id

	svc := NewDiscountService(factory)

	res, err := svc.Validate(context.Background(), &dto.ValidateDiscountRequest{
		Code:        "PREMONLY",
		PlanId:      basic.Id,
		OptionLabel: "Monthly",
	})
	assert.NoError(t, err)
	assert.False(t, res.Valid)

	res, err = svc.Validate(context.Background(), &dto.ValidateDiscountRequest{
		Code:        "PREMONLY",
		PlanId:      premium.Id,
		OptionLabel: "Monthly",
	})
	assert.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestValidateDiscountInactivePlan(t *testing.T) {
	factory := newFakeFactory()
	plan := seedPlanWithOptions(factory.store, "Premium", "premium")
	plan.IsActive = false
	seedDiscount(factory.store, "SAVE10", entity.DiscountTypePercentage, 10)

	svc := NewDiscountService(factory)

	_, err := svc.Validate(context.Background(), &dto.ValidateDiscountRequest{
		Code:        "SAVE10",
		PlanId:      plan.Id,
		OptionLabel: "Monthly",
	})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCreateDiscountDuplicateCode(t *testing.T) {
	factory := newFakeFactory()
	seedDiscount(factory.store, "SAVE10", entity.DiscountTypePercentage, 10)

	svc := NewDiscountService(factory)

	_, err := svc.Create(context.Background(), &dto.UpsertDiscountRequest{
		Code:  "save10",
		Type:  "flat",
		Value: 5000,
	})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestUpdateDiscountNotFound(t *testing.T) {
	factory := newFakeFactory()
	svc := NewDiscountService(factory)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpsertDiscountRequest{
		Code: "ANY", Type: "flat", Value: 1000,
	})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
