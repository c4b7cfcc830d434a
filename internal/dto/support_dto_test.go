// FILE: internal/dto/support_dto_test.go
package dto

import (
	"errors"
	"testing"

	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func baseSubmission(topic string) CreateSubmissionRequest {
	return CreateSubmissionRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Topic:   topic,
		Subject: "Need help",
		Message: "Something is not working for me.",
	}
}

func validateSubmission(req CreateSubmissionRequest) error {
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if v := req.Variant(); v != nil {
		return serverutils.ValidateRequest(v)
	}
	return nil
}

func TestCreateSubmissionGeneralVariant(t *testing.T) {
	req := baseSubmission(TopicGeneral)
	assert.Nil(t, req.Variant())
	assert.NoError(t, validateSubmission(req))
}

func TestCreateSubmissionBillingVariant(t *testing.T) {
	req := baseSubmission(TopicBilling)

	// Billing without the order reference is rejected.
	err := validateSubmission(req)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	orderId := uuid.New()
	req.OrderId = &orderId
	assert.NoError(t, validateSubmission(req))
}

func TestCreateSubmissionTechnicalVariant(t *testing.T) {
	req := baseSubmission(TopicTechnical)

	err := validateSubmission(req)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	req.PageURL = "not a url"
	err = validateSubmission(req)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	req.PageURL = "https://example.com/papers/2023"
	assert.NoError(t, validateSubmission(req))
}

func TestCreateSubmissionUnknownTopic(t *testing.T) {
	req := baseSubmission("partnership")
	err := validateSubmission(req)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
