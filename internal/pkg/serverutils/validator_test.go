// FILE: internal/pkg/serverutils/validator_test.go
package serverutils

import (
	"errors"
	"strings"
	"testing"

	"exam-prep-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(&signupForm{Email: "a@b.com", Password: "longenough"})
	assert.NoError(t, err)
}

func TestValidateRequestMapsToBadRequest(t *testing.T) {
	err := ValidateRequest(&signupForm{Email: "not-an-email", Password: "short"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Equal(t, 400, apperror.StatusCode(err))
	assert.True(t, strings.Contains(err.Error(), "Email"))
	assert.True(t, strings.Contains(err.Error(), "Password"))
}
